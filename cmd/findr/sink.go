package main

import (
	"fmt"
	"io"

	"findr/cmd/findr/signup"

	"gopkg.in/yaml.v3"
)

// yamlSink hands a completed registration to whatever reads w, as one YAML
// document. It is the account-creation side of the form: findr itself does
// not send or store the account.
type yamlSink struct {
	w io.Writer
}

func (s yamlSink) Deliver(r signup.Registration) error {
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding registration: %w", err)
	}
	return enc.Close()
}
