package ports

import "context"

// CommandRunner runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type CommandRunner interface {
	// Run executes name with args and returns its standard output.
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}
