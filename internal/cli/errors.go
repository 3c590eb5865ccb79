package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/all-dot-files/tick/pkg/errors"
)

// PrintError reports err on stderr. AppErrors get their message and
// suggestion; the code, op and cause only show in debug mode.
func PrintError(err error) {
	if err == nil {
		return
	}

	red := color.New(color.FgRed, color.Bold).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()

	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), err.Error())
		if IsDebug() {
			fmt.Fprintf(os.Stderr, "\n%s %+v\n", dim("Debug:"), err)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", red("Error:"), appErr.Message)
	if appErr.Suggestion != "" {
		yellow := color.New(color.FgYellow).SprintFunc()
		fmt.Fprintf(os.Stderr, "\n%s %s\n", yellow("Suggestion:"), appErr.Suggestion)
	}
	if IsDebug() {
		fmt.Fprintf(os.Stderr, "\n%s code=%s op=%s\n", dim("Debug:"), appErr.Code, appErr.Op)
		if appErr.Err != nil {
			fmt.Fprintf(os.Stderr, "%s cause: %+v\n", dim("Debug:"), appErr.Err)
		}
	}
}
