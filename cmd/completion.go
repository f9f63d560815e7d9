package cmd

import (
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests, and exits if it was one.
// Install it with "COMP_INSTALL=1 fifo".
func Complete(name string) {
	input := map[string]complete.Predictor{
		"input":    predict.Set{"csv", "jsonl"},
		"quantity": predict.Something,
		"price":    predict.Something,
		"factor":   predict.Something,
	}
	withInput := func(flags map[string]complete.Predictor) map[string]complete.Predictor {
		for k, v := range input {
			flags[k] = v
		}
		return flags
	}

	cmd := &complete.Command{
		Sub: map[string]*complete.Command{
			"compute": {
				Flags: withInput(map[string]complete.Predictor{
					"q":        predict.Nothing,
					"format":   predict.Set{"markdown", "json"},
					"currency": predict.Something,
					"by":       predict.Something,
					"label":    predict.Something,
				}),
				Args: predict.Files("*"),
			},
			"inventory": {
				Flags: withInput(map[string]complete.Predictor{}),
				Args:  predict.Files("*"),
			},
			"fmt": {
				Flags: withInput(map[string]complete.Predictor{"o": predict.Files("*")}),
				Args:  predict.Files("*"),
			},
			"serve": {
				Flags: map[string]complete.Predictor{"addr": predict.Something},
			},
			"topic": {
				Args: predict.Set(topicNames()),
			},
		},
		Flags: map[string]complete.Predictor{
			"log-level":  predict.Set{"debug", "info", "warn", "error"},
			"log-format": predict.Set{"json", "pretty"},
		},
	}
	cmd.Complete(name)
}
