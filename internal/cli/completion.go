package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without "--" (e.g., "help")
	Short     string   // short flag without "-" (e.g., "h")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "number", "duration")
	IsFile    bool     // true if the flag takes a file path
	IsAlgo    bool     // true if values come from the backend list (dynamic)
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "a", Help: "Coefficient of x⁴", ValueName: "number"},
	{Short: "b", Help: "Coefficient of x³", ValueName: "number"},
	{Short: "c", Help: "Coefficient of x²", ValueName: "number"},
	{Short: "d", Help: "Coefficient of x", ValueName: "number"},
	{Short: "e", Help: "Constant coefficient", ValueName: "number"},
	{Long: "from", Help: "Lower integration bound", ValueName: "number"},
	{Long: "to", Help: "Upper integration bound", ValueName: "number"},
	{Long: "intervals", Help: "Trapezoid subinterval count", Values: []string{"1000", "10000", "100000", "1000000"}, ValueName: "count"},
	{Long: "parallel-threshold", Help: "Quadrature parallelism threshold", Values: []string{"65536", "131072", "262144"}, ValueName: "count"},
	{Long: "algo", Help: "Backend to use", IsAlgo: true, ValueName: "backend"},
	{Long: "combine", Help: "Term combinator", Values: []string{"add", "xor"}, ValueName: "combinator"},
	{Long: "unsafe-xor", Help: "Allow the incorrect xor combinator"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"1m", "5m", "10m"}, ValueName: "duration"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file"},
	{Long: "metrics-addr", Help: "Prometheus metrics address", ValueName: "address"},
	{Long: "quiet", Short: "q", Help: "Quiet mode for scripts"},
	{Long: "verbose", Short: "v", Help: "Verbose output"},
	{Long: "details", Help: "Show performance details"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "tui", Help: "Launch the interactive dashboard"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for the requested shell.
//
// Parameters:
//   - out: The writer for the script.
//   - shell: One of "bash", "zsh", "fish".
//   - availableAlgos: The registered backend keys for --algo completion.
//
// Returns:
//   - error: An error for unsupported shells.
func GenerateCompletion(out io.Writer, shell string, availableAlgos []string) error {
	algos := append(append([]string{}, availableAlgos...), "all")
	switch shell {
	case "bash":
		generateBashCompletion(out, algos)
	case "zsh":
		generateZshCompletion(out, algos)
	case "fish":
		generateFishCompletion(out, algos)
	default:
		return fmt.Errorf("unsupported shell %q (supported: bash, zsh, fish)", shell)
	}
	return nil
}

func generateBashCompletion(out io.Writer, algos []string) {
	var flags []string
	for _, f := range flagRegistry {
		if f.Long != "" {
			flags = append(flags, "--"+f.Long)
		}
		if f.Short != "" {
			flags = append(flags, "-"+f.Short)
		}
	}

	fmt.Fprintf(out, `# bash completion for polyint
_polyint() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "$prev" in
        --algo)
            COMPREPLY=( $(compgen -W "%s" -- "$cur") )
            return 0
            ;;
        --combine)
            COMPREPLY=( $(compgen -W "add xor" -- "$cur") )
            return 0
            ;;
        --completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- "$cur") )
            return 0
            ;;
        --output|-o)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "%s" -- "$cur") )
}
complete -F _polyint polyint
`, strings.Join(algos, " "), strings.Join(flags, " "))
}

func generateZshCompletion(out io.Writer, algos []string) {
	fmt.Fprintf(out, "#compdef polyint\n\n_polyint() {\n    _arguments \\\n")
	for _, f := range flagRegistry {
		name := f.Long
		if name == "" {
			name = f.Short
		}
		prefix := "--"
		if f.Long == "" {
			prefix = "-"
		}
		spec := fmt.Sprintf("        '%s%s[%s]", prefix, name, f.Help)
		switch {
		case f.IsAlgo:
			spec += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(algos, " "))
		case f.IsFile:
			spec += fmt.Sprintf(":%s:_files", f.ValueName)
		case len(f.Values) > 0:
			spec += fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
		case f.ValueName != "":
			spec += ":" + f.ValueName + ":"
		}
		spec += "' \\"
		fmt.Fprintln(out, spec)
	}
	fmt.Fprintln(out, "}\n\n_polyint \"$@\"")
}

func generateFishCompletion(out io.Writer, algos []string) {
	for _, f := range flagRegistry {
		line := "complete -c polyint"
		if f.Long != "" {
			line += " -l " + f.Long
		}
		if f.Short != "" {
			line += " -s " + f.Short
		}
		switch {
		case f.IsAlgo:
			line += fmt.Sprintf(" -x -a '%s'", strings.Join(algos, " "))
		case len(f.Values) > 0:
			line += fmt.Sprintf(" -x -a '%s'", strings.Join(f.Values, " "))
		case f.IsFile:
			line += " -r"
		}
		line += fmt.Sprintf(" -d '%s'", f.Help)
		fmt.Fprintln(out, line)
	}
}
