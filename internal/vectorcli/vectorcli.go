// Package vectorcli holds the command handlers of the vectorkit command line tool.
// Every command takes its integer values from the positional arguments.
// Negative values must follow a "--" separator, otherwise they are parsed as flags.
package vectorcli

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"go.llib.dev/containers/pkg/vector"
	"go.llib.dev/containers/pkg/vectorkit"
	"go.llib.dev/frameless/pkg/cli"
	"go.llib.dev/frameless/pkg/convkit"
	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/logging"
)

const ErrInvalidValue errorkit.Error = "ErrInvalidValue"

// Mux registers every command.
func Mux(logger *logging.Logger) *cli.Mux {
	var m cli.Mux
	m.Handle("slice", SliceCommand{Logger: logger})
	m.Handle("find", FindCommand{Logger: logger})
	m.Handle("stats", StatsCommand{Logger: logger})
	return &m
}

type SliceCommand struct {
	Start  int `flag:"start" default:"0" desc:"index of the first selected value"`
	End    int `flag:"end" default:"-1" desc:"exclusive end index, -1 means the number of values"`
	Stride int `flag:"stride" env:"VECTORKIT_STRIDE" desc:"step between two selected values (default 1)"`

	Logger *logging.Logger
}

func (cmd SliceCommand) Summary() string { return "print a strided selection of the values (use -- before negative values)" }

func (cmd SliceCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "slice"))
	log := loggerOf(cmd.Logger)

	values, ok := readValues(w, r, log)
	if !ok {
		return
	}

	end := cmd.End
	if end < 0 {
		end = values.Len()
	}
	var opts []vector.SliceOption
	if cmd.Stride != 0 {
		opts = append(opts, vector.Stride(cmd.Stride))
	}
	log.Debug(ctx, "slicing",
		logging.Field("start", cmd.Start),
		logging.Field("end", end),
		logging.Field("stride", cmd.Stride),
		logging.Field("size", values.Len()))

	sl, err := vector.NewSlice[int](values, cmd.Start, end, opts...)
	if err != nil {
		log.Warn(ctx, "invalid slice bounds", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeError)
		fmt.Fprintln(w, err.Error())
		return
	}
	writeValues(w, sl.Values())
}

type FindCommand struct {
	Value int `flag:"value" required:"true" desc:"the value to look for"`

	Logger *logging.Logger
}

func (cmd FindCommand) Summary() string { return "print the index of the first matching value, or -1 (use -- before negative values)" }

func (cmd FindCommand) ServeCLI(w cli.Response, r *cli.Request) {
	ctx := logging.ContextWith(r.Context(), logging.Field("command", "find"))
	log := loggerOf(cmd.Logger)

	values, ok := readValues(w, r, log)
	if !ok {
		return
	}

	cv := vector.AsConst[int](values)
	it := vectorkit.Find(cv, cmd.Value)
	if it.Pos() == cv.GetSize() {
		log.Debug(ctx, "value not found", logging.Field("value", cmd.Value))
		fmt.Fprintln(w, -1)
		return
	}
	fmt.Fprintln(w, it.Pos())
}

type StatsCommand struct {
	Logger *logging.Logger
}

func (cmd StatsCommand) Summary() string { return "print the size, the front and the back of the values (use -- before negative values)" }

func (cmd StatsCommand) ServeCLI(w cli.Response, r *cli.Request) {
	values, ok := readValues(w, r, loggerOf(cmd.Logger))
	if !ok {
		return
	}
	fmt.Fprintf(w, "size: %d\n", values.Len())
	if values.IsEmpty() {
		return
	}
	fmt.Fprintf(w, "front: %d\n", *values.Front())
	fmt.Fprintf(w, "back: %d\n", *values.Back())
}

var discard = &logging.Logger{Out: io.Discard}

func loggerOf(l *logging.Logger) *logging.Logger {
	if l == nil {
		return discard
	}
	return l
}

func readValues(w cli.Response, r *cli.Request, log *logging.Logger) (*vector.Storage[int], bool) {
	values, err := parseValues(r.Args)
	if err != nil {
		log.Warn(r.Context(), "rejected input", logging.ErrField(err))
		w.ExitCode(cli.ExitCodeBadRequest)
		fmt.Fprintln(errOut(w), err.Error())
		return nil, false
	}
	return values, true
}

func parseValues(args []string) (*vector.Storage[int], error) {
	if 0 < len(args) && args[0] == "--" {
		args = args[1:]
	}
	var values vector.Storage[int]
	for i, raw := range args {
		v, err := convkit.Parse[int](raw)
		if err != nil {
			return nil, ErrInvalidValue.F("value #%d (%q) is not an integer", i, raw)
		}
		values.Append(v)
	}
	return &values, nil
}

func writeValues[T any](w io.Writer, vs iter.Seq[*T]) {
	var parts []string
	for ptr := range vs {
		parts = append(parts, fmt.Sprint(*ptr))
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
}

func errOut(w cli.Response) io.Writer {
	if ew, ok := w.(cli.ErrorWriter); ok {
		return ew.Stderr()
	}
	return w
}
