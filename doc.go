/*
Package slotwise extracts resolved slot values from voice-assistant intent
requests (Alexa-style request envelopes).

When the platform's natural-language layer maps an utterance to an intent, it
attaches to each slot a list of resolution authorities, each reporting a
status code and, on success, candidate {id, name} values. Slotwise finds the
first authority that reports ER_SUCCESS_MATCH and hands you its values, or
their canonical id, degrading silently to nil when anything along the way is
absent. It never panics on malformed envelopes and never mutates its inputs.

# Usage

	package main

	import (
		"encoding/json"
		"fmt"
		"os"

		"github.com/voxkit/slotwise"
	)

	func main() {
		raw, err := os.ReadFile("envelope.json")
		if err != nil {
			fmt.Println(err)
			return
		}

		var envelope map[string]any
		if err := json.Unmarshal(raw, &envelope); err != nil {
			fmt.Println(err)
			return
		}

		// Package-level helpers use the default request classifier,
		// which reads the request.type discriminator.
		if id, ok := slotwise.SlotValueID(envelope, "city"); ok {
			fmt.Println("canonical id:", id)
		}
	}

For custom request classification (e.g. via a platform SDK), build a Resolver
with WithClassifier. The lower-level navigation helpers live in pkg/pathval
and the typed model in pkg/domain.
*/
package slotwise
