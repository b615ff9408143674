package toggl

import (
	"fmt"
	"os"
)

func classifyOpenError(path string, err error) error {
	if os.IsNotExist(err) {
		return fmt.Errorf("export file not found: %s", path)
	}
	if os.IsPermission(err) {
		return fmt.Errorf("permission denied reading export file: %s", path)
	}
	return fmt.Errorf("opening export file: %w", err)
}
