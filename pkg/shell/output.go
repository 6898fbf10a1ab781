package shell

import (
	"fmt"
	"io"
	"strconv"
)

// output is what a single command prints back; mirrors a Redis style reply.
type output struct {
	quit        bool    // Stops the shell after writing if true.
	writeNil    bool    // Writes "(nil)" if true.
	err         *string // Error to write if set.
	writeInt    *int    // Writes an integer value if set.
	writeString string  // Writes a string value if set.
}

func quitShell(msg string) output {
	return output{writeString: msg, quit: true}
}

func writeNil() output {
	return output{writeNil: true}
}

func writeInt(i int) output {
	return output{writeInt: &i}
}

func writeString(s string) output {
	return output{writeString: s}
}

func writeOk() output {
	return writeString("OK")
}

func writeError(err error) output {
	msg := "ERR " + err.Error()
	return output{err: &msg}
}

// status is the label recorded in the commands metric.
func (o output) status() string {
	if o.err != nil {
		return "error"
	}
	return "ok"
}

// writeTo prints the output as one line to `w`.
func (o output) writeTo(w io.Writer) error {
	var line string
	switch {
	case o.err != nil:
		line = *o.err
	case o.writeNil:
		line = "(nil)"
	case o.writeInt != nil:
		line = "(integer) " + strconv.Itoa(*o.writeInt)
	default:
		line = o.writeString
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
