package catalog

// Build returns the built-in catalog. Every call constructs a fresh,
// independent catalog; the result is identical across calls.
func Build() *Catalog {
	return MustNew(seedPackets())
}

// seedPackets returns the built-in packets. Math uses multiple-choice
// questions and science uses free-text ones, so the fixture covers both
// kinds.
func seedPackets() map[string]Packet {
	return map[string]Packet{
		"math": {
			Name: "Math Packet",
			Questions: []Question{
				MultipleChoice("What is 2 + 2?", []string{"3", "4", "5", "6"}, 1),
				MultipleChoice("What is 3 * 3?", []string{"6", "7", "8", "9"}, 3),
			},
		},
		"science": {
			Name: "Science Packet",
			Questions: []Question{
				FreeText("What planet is known as the Red Planet?", "Mars"),
				FreeText("What is the chemical symbol for water?", "H2O"),
			},
		},
	}
}
