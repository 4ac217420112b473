package main

import (
	"fmt"
	"io"
	"math"
	"net/url"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/HerbHall/diskprices/internal/catalog"
	"github.com/HerbHall/diskprices/internal/view"
	"github.com/HerbHall/diskprices/pkg/models"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	numberStyle   = cellStyle.Align(lipgloss.Right)
	bestDealStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ECC71")).Bold(true)
)

func newViewCmd(a *app) *cobra.Command {
	var (
		query  string
		search string
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Print the listing grid for a page query",
		Example: `  diskprices view --query "category=SSD&sort=price-desc"
  diskprices view --search ironwolf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			values, err := url.ParseQuery(query)
			if err != nil {
				return fmt.Errorf("parse query: %w", err)
			}
			return a.view(cmd.OutOrStdout(), values, search)
		},
	}
	cmd.Flags().StringVar(&query, "query", "", "page query string (category, retailer, condition, sort, q)")
	cmd.Flags().StringVar(&search, "search", "", "search term, applied after the debounce window")
	return cmd
}

func (a *app) view(out io.Writer, query url.Values, search string) error {
	engine, err := catalog.NewEngine(a.source())
	if err != nil {
		return err
	}

	debounce := a.cfg.GetDuration("view.search_debounce")
	if debounce <= 0 {
		debounce = view.DefaultSearchDebounce
	}

	rendered := make(chan view.View, 1)
	renderer := view.RendererFunc(func(v view.View) {
		select {
		case rendered <- v:
		default:
		}
	})
	location := view.NewMemoryLocation("/")
	ctrl := view.NewController(engine, renderer, location,
		view.WithSearchDebounce(debounce),
		view.WithLogger(a.logger.Named("view")),
	)
	defer ctrl.Close()

	v := ctrl.Load(query)
	<-rendered
	if search != "" {
		ctrl.Search(search)
		select {
		case v = <-rendered:
		case <-time.After(debounce + time.Second):
			return fmt.Errorf("search %q: no update after %s", search, debounce)
		}
	}

	return printView(out, engine, v, location.URL())
}

func printView(out io.Writer, engine *catalog.Engine, v view.View, pageURL string) error {
	rows := make([][]string, 0, len(v.Order))
	for _, id := range v.Order {
		l, err := engine.Listing(id)
		if err != nil {
			return err
		}
		badge := ""
		if v.BestDeals.IsBestDeal(l.ID) {
			badge = bestDealStyle.Render("BEST DEAL")
		}
		rows = append(rows, []string{
			l.Name,
			string(l.Category),
			l.Retailer,
			string(l.Condition),
			formatPrice(l, l.Price),
			formatCapacity(l.Capacity),
			formatPrice(l, l.PricePerUnit),
			badge,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PRODUCT", "CATEGORY", "RETAILER", "CONDITION", "PRICE", "CAPACITY", "$/TB", "").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col >= 4 && col <= 6:
				return numberStyle
			default:
				return cellStyle
			}
		})

	if _, err := fmt.Fprintln(out, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "%s  %s\n", v.Label, pageURL)
	return err
}

func formatPrice(l models.Listing, v float64) string {
	if l.Unpriced {
		return "n/a"
	}
	return "$" + view.FormatNumber(v)
}

func formatCapacity(tb float64) string {
	if tb == math.Trunc(tb) {
		return view.FormatInt(tb) + " TB"
	}
	return view.FormatNumber(tb) + " TB"
}
