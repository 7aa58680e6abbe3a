package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Account:
		o.printAccount(v)
	case AccountList:
		o.printAccountList(v)
	case Session:
		o.printSession(v)
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printAccount(a Account) {
	fmt.Printf("Full name: %s\n", a.FullName)
	fmt.Printf("Username:  %s\n", a.Username)
	fmt.Printf("Email:     %s\n", a.Email)
	if a.Phone != "" {
		fmt.Printf("Phone:     %s\n", a.Phone)
	}
}

func (o *Output) printAccountList(list AccountList) {
	if len(list.Accounts) == 0 {
		fmt.Println("No accounts registered.")
		return
	}
	for i, a := range list.Accounts {
		if i > 0 {
			fmt.Println()
		}
		o.printAccount(a)
	}
}

func (o *Output) printSession(s Session) {
	fmt.Printf("Signed in as %s (%s)\n", s.FullName, s.Email)
}
