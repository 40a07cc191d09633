// Package topics adds file-backed help topics to a Cobra application.
// Topics are read from an fs.FS so they can be embedded into the binary;
// `<app> help <topic>` prints one and `<app> help topics` lists them.
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// optionPrefix marks topics that document a flag
const optionPrefix = "option-"

// TopicManager manages help topics for a Cobra application
type TopicManager struct {
	source       fs.FS
	topics       map[string]*Topic
	originalHelp func(*cobra.Command, []string)
	extensions   []string
	renderer     Renderer
}

// Topic represents a help topic
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures the TopicManager
type Options struct {
	// Extensions is the list of file extensions to consider as topics
	// Defaults to [".txt", ".md"] if not specified
	Extensions []string

	// Renderer formats topic content. Defaults to PlainRenderer.
	Renderer Renderer
}

// New creates a TopicManager reading from source
func New(source fs.FS, opts Options) *TopicManager {
	tm := &TopicManager{
		source:     source,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(tm.extensions) == 0 {
		tm.extensions = []string{".txt", ".md"}
	}
	if tm.renderer == nil {
		tm.renderer = &PlainRenderer{}
	}
	return tm
}

func (tm *TopicManager) supported(ext string) bool {
	for _, valid := range tm.extensions {
		if ext == valid {
			return true
		}
	}
	return false
}

// Scan loads every topic file found in the source
func (tm *TopicManager) Scan() error {
	return fs.WalkDir(tm.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := path.Ext(p)
		if !tm.supported(ext) {
			return nil
		}

		content, err := fs.ReadFile(tm.source, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(path.Base(p), ext)
		tm.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
}

// GetTopic retrieves a topic by name. Flag-style names (--data-dir) find
// the matching option- topic.
func (tm *TopicManager) GetTopic(name string) (*Topic, bool) {
	name = strings.TrimPrefix(name, "--")
	name = strings.TrimPrefix(name, "-")

	if topic, ok := tm.topics[name]; ok {
		return topic, true
	}
	topic, ok := tm.topics[optionPrefix+name]
	return topic, ok
}

// ListTopics returns all topic names, sorted
func (tm *TopicManager) ListTopics() []string {
	names := make([]string, 0, len(tm.topics))
	for name := range tm.topics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render returns the topic formatted by the configured renderer
func (tm *TopicManager) Render(topic *Topic) string {
	return tm.renderer.Render(topic.Content, path.Ext(topic.Path))
}

// WriteList prints the topic index for program
func (tm *TopicManager) WriteList(w io.Writer, program string) {
	names := tm.ListTopics()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if strings.HasPrefix(name, optionPrefix) {
			options = append(options, strings.TrimPrefix(name, optionPrefix))
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Initialize scans source and installs a help command that knows about topics
func Initialize(rootCmd *cobra.Command, source fs.FS, opts Options) (*TopicManager, error) {
	tm := New(source, opts)
	if err := tm.Scan(); err != nil {
		return nil, fmt.Errorf("failed to scan topics: %w", err)
	}

	tm.originalHelp = rootCmd.HelpFunc()
	program := rootCmd.Name()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + program + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + program + ` help topics`,
		// Flag-style topics (help --data-dir) arrive as plain args
		DisableFlagParsing: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range rootCmd.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, tm.ListTopics()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				tm.originalHelp(rootCmd, []string{})
				return
			}
			if args[0] == "topics" {
				tm.WriteList(cmd.OutOrStdout(), program)
				return
			}
			if topic, ok := tm.GetTopic(args[0]); ok {
				fmt.Fprint(cmd.OutOrStdout(), tm.Render(topic))
				return
			}

			// Not a topic: help for the named command
			target, _, err := rootCmd.Find(args)
			if err != nil || target == nil {
				tm.originalHelp(rootCmd, args)
				return
			}
			tm.originalHelp(target, []string{})
		},
	}

	for _, c := range rootCmd.Commands() {
		if c.Name() == "help" {
			rootCmd.RemoveCommand(c)
			break
		}
	}
	rootCmd.SetHelpCommand(helpCmd)

	return tm, nil
}
