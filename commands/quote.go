// Package commands holds the sub-commands registered on the PocketBase root
// command.
package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"elecquote/equipment"
	"elecquote/services"
)

type quoteOptions struct {
	roomsFile  string
	pricesFile string
	defaults   bool
	asJSON     bool
}

// NewQuoteCommand returns the "quote" command, which prices a room list
// offline with the built-in price table and optional overrides.
func NewQuoteCommand(base map[string]float64) *cobra.Command {
	opts := &quoteOptions{}

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the material quote of a room list",
		Example: "  elecquote quote --defaults\n" +
			"  elecquote quote --rooms rooms.json --prices prices.yaml",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd.OutOrStdout(), opts, base)
		},
	}

	cmd.Flags().StringVar(&opts.roomsFile, "rooms", "", "JSON file holding the room list")
	cmd.Flags().BoolVar(&opts.defaults, "defaults", false, "price the default rooms of a new form")
	cmd.Flags().StringVar(&opts.pricesFile, "prices", "", "YAML file mapping material names to unit prices")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the quote as JSON")

	return cmd
}

func runQuote(out io.Writer, opts *quoteOptions, base map[string]float64) error {
	var rooms []equipment.Room
	switch {
	case opts.roomsFile != "":
		loaded, err := readRooms(opts.roomsFile)
		if err != nil {
			return err
		}
		rooms = loaded
	case opts.defaults:
		rooms = equipment.NewCatalog(equipment.NewSequenceGenerator("room-")).DefaultRooms()
	default:
		return errors.New("either --rooms or --defaults is required")
	}

	prices := equipment.DefaultPriceTable().WithOverrides(base)
	if opts.pricesFile != "" {
		overrides, err := readPrices(opts.pricesFile)
		if err != nil {
			return err
		}
		prices = prices.WithOverrides(overrides)
	}

	quote := equipment.CalculateQuote(rooms, prices)
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(quote)
	}
	return printQuote(out, quote)
}

func readRooms(path string) ([]equipment.Room, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rooms file: %w", err)
	}

	var rooms []equipment.Room
	if err := json.Unmarshal(data, &rooms); err != nil {
		// A saved form or a /api/rooms response wraps the list.
		var wrapped struct {
			Rooms []equipment.Room `json:"rooms"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("parsing rooms file: %w", err)
		}
		rooms = wrapped.Rooms
	}
	return rooms, nil
}

// readPrices accepts numbers or numeric strings as YAML values.
func readPrices(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prices file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing prices file: %w", err)
	}

	prices := make(map[string]float64, len(raw))
	for name, value := range raw {
		price, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, fmt.Errorf("price of %q: %w", name, err)
		}
		if price < 0 {
			return nil, fmt.Errorf("price of %q is negative", name)
		}
		prices[name] = price
	}
	return prices, nil
}

func printQuote(out io.Writer, quote equipment.QuoteResult) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "Désignation\tQté\tPrix unitaire\tTotal\t")
	for _, item := range quote.Materials {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t\n",
			item.Name, item.Quantity, services.FormatEUR(item.UnitPrice), services.FormatEUR(item.TotalPrice))
	}
	fmt.Fprintf(w, "Total matériel TTC\t\t\t%s\t\n", services.FormatEUR(quote.TotalPrice))
	return w.Flush()
}
