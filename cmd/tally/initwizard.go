package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"
)

// Sample groups offered by the wizard.
var (
	basicSamples = []string{
		"",
		"1",
		"1,2",
		"1,2,3,4,5",
		"1\n2,3",
	}

	customDelimiterSamples = []string{
		"//;\n1;2",
		"//[***]\n1***2***3",
		"//[*][%]\n1*2%3",
		"//[**][%%]\n1**2%%3",
	}

	boundarySamples = []string{
		"2,1001",
		"1000,1",
		"1000,1001,2",
	}

	failingSamples = []string{
		"1,-2,3",
		"-1,2,-3,-4",
		"1,a,2",
	}
)

// runInit asks which sample groups to include and writes a samples YAML
// file to path.
func runInit(path string) error {
	var (
		withCustom   = true
		withBoundary = true
		withFailing  bool
	)

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Samples file path").
			Value(&path),
		huh.NewConfirm().
			Title("Include custom-delimiter samples?").
			Value(&withCustom),
		huh.NewConfirm().
			Title("Include upper-bound samples (values over 1000)?").
			Value(&withBoundary),
		huh.NewConfirm().
			Title("Include failing samples (negatives, bad tokens)?").
			Value(&withFailing),
	))

	if err := form.Run(); err != nil {
		return err
	}

	f := samplesFile{Samples: basicSamples}
	if withCustom {
		f.Samples = append(f.Samples, customDelimiterSamples...)
	}
	if withBoundary {
		f.Samples = append(f.Samples, boundarySamples...)
	}
	if withFailing {
		f.Samples = append(f.Samples, failingSamples...)
	}

	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal samples: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write samples: %w", err)
	}

	fmt.Printf("Wrote %s (%d samples)\n", path, len(f.Samples))

	return nil
}
