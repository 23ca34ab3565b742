package main

// CLIResult is the top-level JSON envelope for all commands.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIUser is a JSON-friendly user representation. Retrieved reports
// whether the demo could look the user back up by its identifier.
type CLIUser struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Valid     bool   `json:"valid"`
	Retrieved bool   `json:"retrieved"`
}

// CLIEmailCheck is a JSON-friendly email validity result.
type CLIEmailCheck struct {
	Email string `json:"email"`
	Valid bool   `json:"valid"`
}
