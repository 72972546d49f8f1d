package pipeline

import "fmt"

// InstallError reports a failed npm install. Generated files are kept.
type InstallError struct {
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("files were generated but installing dependencies failed: %v", e.Err)
}

func (e *InstallError) Unwrap() error {
	return e.Err
}
