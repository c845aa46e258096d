package interactive

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// runSelectFunc runs a prompt and returns the chosen index
type runSelectFunc func(prompt promptui.Select) (int, error)

// SelectorAdapter asks the user which artifact a contract name refers to
type SelectorAdapter struct {
	config    *config.RuntimeConfig
	runSelect runSelectFunc
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{
		config: cfg,
		runSelect: func(prompt promptui.Select) (int, error) {
			index, _, err := prompt.Run()
			return index, err
		},
	}
}

// SelectContract picks one artifact out of several sharing a name
func (s *SelectorAdapter) SelectContract(ctx context.Context, contracts []*domain.ContractInfo, prompt string) (*domain.ContractInfo, error) {
	// Scripts and CI never get a prompt
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	switch len(contracts) {
	case 0:
		return nil, fmt.Errorf("no contracts provided for selection")
	case 1:
		return contracts[0], nil
	}

	labels := make([]string, len(contracts))
	for i, contract := range contracts {
		labels[i] = artifactLabel(contract)
	}

	index, err := s.runSelect(promptui.Select{
		Label: prompt,
		Items: colorizeLabels(contracts, labels),
		Templates: &promptui.SelectTemplates{
			Label:    "{{ . }}",
			Active:   "▸ {{ . | cyan }}",
			Inactive: "  {{ . | faint }}",
			Selected: "✓ {{ . | green }}",
			Help:     color.New(color.FgYellow).Sprint("Type to filter, Enter to select"),
		},
		Size:              10,
		StartInSearchMode: true,
		// Search the plain labels; the displayed items carry ANSI codes
		Searcher: newFuzzySearcher(labels),
	})
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}
	if index < 0 || index >= len(contracts) {
		return nil, fmt.Errorf("selection out of range: %d", index)
	}

	return contracts[index], nil
}

// artifactLabel renders "Name (source) [build]". Foundry writes one artifact
// per compiler version as out/File.sol/Name.<version>.json, so the build tag
// is what tells same-source duplicates apart.
func artifactLabel(contract *domain.ContractInfo) string {
	label := fmt.Sprintf("%s (%s)", contract.Name, strings.TrimPrefix(contract.Path, "src/"))
	if tag := buildTag(contract); tag != "" {
		label += " [" + tag + "]"
	}
	return label
}

func buildTag(contract *domain.ContractInfo) string {
	if contract.ArtifactPath == "" {
		return ""
	}
	base := strings.TrimSuffix(filepath.Base(contract.ArtifactPath), ".json")
	return strings.TrimPrefix(strings.TrimPrefix(base, contract.Name), ".")
}

// colorizeLabels highlights the contract name and dims the rest
func colorizeLabels(contracts []*domain.ContractInfo, labels []string) []string {
	bold := color.New(color.FgWhite, color.Bold)
	dim := color.New(color.FgBlue)

	items := make([]string, len(labels))
	for i, contract := range contracts {
		rest := strings.TrimPrefix(labels[i], contract.Name)
		items[i] = bold.Sprint(contract.Name) + dim.Sprint(rest)
	}
	return items
}

// newFuzzySearcher matches case-insensitively, first by substring and then
// by sahilm/fuzzy subsequence
func newFuzzySearcher(labels []string) func(input string, index int) bool {
	lower := make([]string, len(labels))
	for i, l := range labels {
		lower[i] = strings.ToLower(l)
	}

	return func(input string, index int) bool {
		if input == "" {
			return true
		}
		input = strings.ToLower(input)
		if strings.Contains(lower[index], input) {
			return true
		}
		return len(fuzzy.Find(input, lower[index:index+1])) > 0
	}
}

var _ usecase.InteractiveSelector = (*SelectorAdapter)(nil)
