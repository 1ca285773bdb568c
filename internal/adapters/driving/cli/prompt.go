package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// prompter reads answers from the command's input. Secrets are read without
// echo when the input is a terminal.
type prompter struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{cmd: cmd, reader: bufio.NewReader(cmd.InOrStdin())}
}

// ask returns fallback when it is non-empty, otherwise prompts for a line.
func (p *prompter) ask(label, fallback string) string {
	if fallback != "" {
		return fallback
	}
	p.cmd.Printf("%s: ", label)
	return readLine(p.reader)
}

//nolint:errcheck // CLI helper, a failed read yields an empty answer
func (p *prompter) secret(label string) string {
	p.cmd.Printf("%s: ", label)
	if f, ok := p.cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		password, err := term.ReadPassword(int(f.Fd()))
		p.cmd.Println()
		if err == nil {
			return string(password)
		}
	}
	return readLine(p.reader)
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readAllTrimmed reads a whole stream, as used by --password-stdin.
func readAllTrimmed(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
