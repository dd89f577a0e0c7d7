package cli

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool
	Out   io.Writer
	Err   io.Writer
}

// idGetter is implemented by the domain models printed in quiet mode.
type idGetter interface {
	GetID() int64
}

// Success outputs a successful result. human is printed in the default mode.
func (f *OutputFormatter) Success(data any, human string) error {
	if f.Quiet {
		if g, ok := data.(idGetter); ok {
			_, err := fmt.Fprintf(f.Out, "%d\n", g.GetID())
			return err
		}
		return nil
	}

	if f.JSON {
		return f.writeJSON(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	_, err := fmt.Fprintln(f.Out, human)
	return err
}

// Fail prints err in the selected mode and returns it wrapped with its exit
// code.
func (f *OutputFormatter) Fail(err error) error {
	if f.JSON {
		if werr := f.writeJSON(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    errorCode(err),
				"message": err.Error(),
			},
		}); werr != nil {
			return werr
		}
	} else {
		fmt.Fprintf(f.Err, "Error: %s\n", err)
	}
	return &CommandError{Code: ExitCodeFor(err), Err: err}
}

func (f *OutputFormatter) writeJSON(v any) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintf(f.Out, "%s\n", raw)
	return err
}
