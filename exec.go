package iconpad

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/esimov/iconpad/utils"
	"golang.org/x/term"
)

// Ops holds the console options of a CLI run.
type Ops struct {
	// Stderr receives the progress indicator and the status messages.
	Stderr io.Writer
	// Quiet disables the progress lines, keeping only the final status.
	Quiet bool
}

// Execute runs the generator and reports its progress on the console.
// When the output is a terminal a spinner is shown while the icon is
// generated and the progress lines are printed once it stops.
func (g *Generator) Execute(ctx context.Context, op *Ops) error {
	w := op.Stderr
	if w == nil {
		w = os.Stderr
	}

	var (
		buf     bytes.Buffer
		spinner *utils.Spinner
	)
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		spinner = utils.NewSpinner(w, fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ ICONPAD", utils.StatusMessage),
			utils.DecorateText("⇢ generating the icon...", utils.DefaultMessage),
		), time.Millisecond*80, true)
	}

	if g.Logger == nil && !op.Quiet {
		if spinner != nil {
			g.Logger = log.New(&buf, "", 0)
		} else {
			g.Logger = log.New(w, "", 0)
		}
	}

	now := time.Now()
	if spinner != nil {
		spinner.Start()
	}
	_, err := g.Generate(ctx)
	if spinner != nil {
		if err != nil {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ ICONPAD", utils.StatusMessage),
				utils.DecorateText("generating the icon failed...", utils.DefaultMessage),
				utils.DecorateText("✘", utils.ErrorMessage),
			)
		} else {
			spinner.StopMsg = fmt.Sprintf("%s %s %s\n",
				utils.DecorateText("⚡ ICONPAD", utils.StatusMessage),
				utils.DecorateText("⇢", utils.DefaultMessage),
				utils.DecorateText("the icon has been generated successfully ✔", utils.SuccessMessage),
			)
		}
		spinner.Stop()
		io.Copy(w, &buf)
	}

	if err != nil {
		return err
	}

	if g.Config.Output != PipeName {
		fmt.Fprintf(w, "\nThe icon has been saved as: %s\n",
			utils.DecorateText(filepath.Base(g.Config.Output), utils.SuccessMessage),
		)
	}
	fmt.Fprintf(w, "Done! Execution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))

	return nil
}
