package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	DryRun     bool
	Date       string
	ReportName string
	ReportType []string
	Dir        string
}
