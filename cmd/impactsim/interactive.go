package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/impact-sim/internal/cities"
	"github.com/couchcryptid/impact-sim/internal/domain"
)

const banner = `
╔══════════════════════════════════════════════════════════════════╗
║                     IMPACT SIMULATOR                             ║
║               Meteor Impact Analysis System                      ║
╚══════════════════════════════════════════════════════════════════╝
`

func runInteractive(cmd *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(banner)
	fmt.Println("\nThis program estimates meteor impact effects on major cities.")

	for {
		params, err := promptParameters(reader)
		if err != nil {
			return err
		}

		result, err := domain.Simulate(params)
		if err != nil {
			// Inputs are validated at the prompt, so this is unexpected.
			return err
		}

		fmt.Print(renderer.Report(result))

		if !promptYesNo(reader, "\nRun another simulation? (y/n): ") {
			fmt.Println("\nThank you for using the Impact Simulator.")
			return nil
		}
		fmt.Println()
	}
}

func promptParameters(reader *bufio.Reader) (domain.ImpactParameters, error) {
	diameter := promptFloat(reader, "Enter impactor diameter in meters (e.g., 10-1000): ", 0.1)
	velocity := promptFloat(reader, "Enter impact velocity in m/s (typical: 11,000-72,000): ", 100)
	material := promptMaterial(reader)
	city := promptCity(reader)

	return domain.ImpactParameters{
		DiameterM:   diameter,
		VelocityMps: velocity,
		Material:    material,
		City:        city,
	}, nil
}

// promptFloat re-prompts until the user enters a number of at least min.
func promptFloat(reader *bufio.Reader, prompt string, min float64) float64 {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		exitIfInterrupted(err)

		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			fmt.Println("Please enter a valid number")
			continue
		}
		if v < min {
			fmt.Printf("Value must be at least %g\n", min)
			continue
		}
		return v
	}
}

func promptMaterial(reader *bufio.Reader) domain.Material {
	materials := domain.Materials()

	fmt.Println("\nAVAILABLE MATERIALS:")
	for i, m := range materials {
		fmt.Printf("%d. %-15s - Density: %.0f kg/m³ (%s)\n", i+1, m.Name, m.Density, m.Description)
	}

	for {
		fmt.Print("\nEnter material number or name: ")
		line, err := reader.ReadString('\n')
		exitIfInterrupted(err)
		choice := strings.TrimSpace(line)

		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(materials) {
			return materials[idx-1].Material
		}
		for _, m := range materials {
			if strings.EqualFold(choice, string(m.Material)) || strings.EqualFold(choice, m.Name) {
				return m.Material
			}
		}
		fmt.Println("Invalid selection. Please try again.")
	}
}

func promptCity(reader *bufio.Reader) string {
	all := cities.All()

	fmt.Println("\nAVAILABLE CITIES:")
	for i, c := range all {
		fmt.Printf("%2d. %-14s (%s)\n", i+1, c.Name, c.Country)
	}

	for {
		fmt.Print("\nEnter city number or name: ")
		line, err := reader.ReadString('\n')
		exitIfInterrupted(err)
		choice := strings.TrimSpace(line)

		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(all) {
			return all[idx-1].Name
		}
		if c, ok := cities.Get(choice); ok {
			return c.Name
		}
		fmt.Println("Invalid selection. Please try again.")
	}
}

func promptYesNo(reader *bufio.Reader, prompt string) bool {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		exitIfInterrupted(err)

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		fmt.Println("Please enter 'y' or 'n'")
	}
}
