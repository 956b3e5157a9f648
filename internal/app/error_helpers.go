// Where: cli/internal/app/error_helpers.go
// What: Shared error-to-exit-code helper.
// Why: Keep command handlers focused on their flow.
package app

import (
	"fmt"
	"io"
)

func exitWithError(out io.Writer, err error) int {
	fmt.Fprintln(out, err)
	return 1
}
