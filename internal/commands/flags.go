package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// optionalString is a string flag that records whether it was given, so an
// explicit empty value can be told apart from an absent flag.
type optionalString struct {
	value string
	set   bool
}

var _ pflag.Value = (*optionalString)(nil)

func (o *optionalString) Set(s string) error {
	o.value = s
	o.set = true
	return nil
}

func (o *optionalString) String() string { return o.value }
func (o *optionalString) Type() string   { return "string" }

// Ptr returns nil when the flag was not given.
func (o *optionalString) Ptr() *string {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// optionalInt is an int flag that records whether it was given.
type optionalInt struct {
	value int
	set   bool
}

var _ pflag.Value = (*optionalInt)(nil)

func (o *optionalInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid id: %s", s)
	}
	o.value = n
	o.set = true
	return nil
}

func (o *optionalInt) String() string {
	if !o.set {
		return ""
	}
	return strconv.Itoa(o.value)
}

func (o *optionalInt) Type() string { return "int" }

// fileFlag registers the --file/-f flag shared by every list command.
func fileFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVarP(p, "file", "f", "", "path to the CSV task list")
}

// notesFlag registers --notes/-n after resetting v.
func notesFlag(fs *pflag.FlagSet, v *optionalString) {
	*v = optionalString{}
	fs.VarP(v, "notes", "n", "replace the notes field (empty clears it)")
}

// idFlag registers --id after resetting v.
func idFlag(fs *pflag.FlagSet, v *optionalInt) {
	*v = optionalInt{}
	fs.Var(v, "id", "row id")
}
