// Command powerform-preview renders power-parameter fieldset fragments from
// the power-type catalog. Without flags it prompts interactively for a power
// type and its parameter values, then prints the fragment that the console
// would swap into the page.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	"github.com/jamestiotio/maas/pkg/catalog"
	"github.com/jamestiotio/maas/pkg/powerform"
)

func main() {
	catalogDir := flag.String("catalog", "", "catalog directory (embedded catalog if empty)")
	driverName := flag.String("driver", "", "power type to render (prompts if empty)")
	output := flag.String("output", "", "output file (stdout if empty)")
	fill := flag.Bool("fill", false, "prompt for parameter values")
	flag.Parse()

	cat, err := loadCatalog(*catalogDir)
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	renderer, err := powerform.NewRenderer(powerform.WithCatalog(cat))
	if err != nil {
		log.Fatalf("Failed to configure renderer: %v", err)
	}

	name := *driverName
	if name == "" {
		name, err = pickDriver(cat)
		if err != nil {
			log.Fatalf("Failed to select power type: %v", err)
		}
	}

	driver, ok := cat.Driver(name)
	if !ok {
		log.Fatalf("Unknown power type: %q", name)
	}

	var values map[string]string
	if *fill {
		values, err = promptValues(driver)
		if err != nil {
			log.Fatalf("Failed to collect values: %v", err)
		}
	}

	fragment, err := renderer.RenderDriver(name, values)
	if err != nil {
		log.Fatalf("Failed to render fragment: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(fragment+"\n"), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Fragment written to %s\n", *output)
		return
	}
	fmt.Println(fragment)
}

func loadCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		return powerform.DefaultCatalog()
	}
	return catalog.LoadFS(os.DirFS(dir))
}

func pickDriver(cat *catalog.Catalog) (string, error) {
	options := cat.Names()
	descriptions := make(map[string]string, len(options))
	for _, driver := range cat.Drivers() {
		descriptions[driver.Name] = driver.DisplayLabel()
	}

	prompt := &survey.Select{
		Message: "Power type:",
		Options: options,
		Description: func(value string, _ int) string {
			return descriptions[value]
		},
	}

	var picked string
	if err := survey.AskOne(prompt, &picked); err != nil {
		return "", err
	}
	return picked, nil
}

func promptValues(driver catalog.Driver) (map[string]string, error) {
	values := make(map[string]string, len(driver.Fields))
	for _, field := range driver.Fields {
		var answer string
		var err error

		switch {
		case field.Secret:
			err = survey.AskOne(&survey.Password{Message: field.DisplayLabel() + ":"}, &answer)
		case field.Type == catalog.FieldTypeChoice:
			options := make([]string, 0, len(field.Choices))
			for _, choice := range field.Choices {
				options = append(options, choice.Value)
			}
			prompt := &survey.Select{
				Message: field.DisplayLabel() + ":",
				Options: options,
				Default: field.Default,
			}
			err = survey.AskOne(prompt, &answer)
		default:
			prompt := &survey.Input{
				Message: field.DisplayLabel() + ":",
				Default: field.Default,
			}
			err = survey.AskOne(prompt, &answer)
		}
		if err != nil {
			return nil, err
		}
		if answer != "" {
			values[field.Name] = answer
		}
	}
	return values, nil
}
