package profile

// Built-in schemes. "default" uses the bright SGR range so classes pop on
// both dark and light terminals; "classic" sticks to the base eight colours
// for terminals that render the bright range poorly; "mono" carries no
// styling at all, which is occasionally useful for piping coloured-profile
// output paths through tests.
func init() {
	Register(&Profile{
		Name: "default",
		styles: [numClasses]Style{
			ClassNull:       "\x1b[90m",
			ClassWhitespace: "\x1b[92m",
			ClassPrintable:  "\x1b[96m",
			ClassControl:    "\x1b[95m",
			ClassHighBit:    "\x1b[93m",
			ClassExtended:   "\x1b[33m",
		},
	})
	Register(&Profile{
		Name: "classic",
		styles: [numClasses]Style{
			ClassNull:       "\x1b[2m",
			ClassWhitespace: "\x1b[32m",
			ClassPrintable:  "\x1b[36m",
			ClassControl:    "\x1b[35m",
			ClassHighBit:    "\x1b[31m",
			ClassExtended:   "\x1b[33m",
		},
	})
	Register(&Profile{Name: "mono"})
}
