package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oahconnect/carelink/internal/cli/formatter"
	"github.com/oahconnect/carelink/internal/domain"
)

// catalogItem is one purchasable product.
type catalogItem struct {
	Name  string
	Price int
}

// catalogSection groups products under a display category.
type catalogSection struct {
	Category string
	Items    []catalogItem
}

// marketplaceCatalog is the fixed product list shown to residents.
var marketplaceCatalog = []catalogSection{
	{Category: "Healthcare", Items: []catalogItem{
		{Name: "Adult Diapers (Pack of 10)", Price: 899},
		{Name: "Blood Pressure Monitor", Price: 1299},
		{Name: "Walking Stick", Price: 499},
		{Name: "Medicine Organizer", Price: 299},
	}},
	{Category: "Groceries", Items: []catalogItem{
		{Name: "Fresh Fruits (1kg)", Price: 120},
		{Name: "Milk (1L)", Price: 60},
		{Name: "Whole Wheat Bread", Price: 45},
		{Name: "Eggs (12 pcs)", Price: 84},
	}},
	{Category: "Leisure", Items: []catalogItem{
		{Name: "Large Print Books", Price: 299},
		{Name: "Puzzle Games", Price: 199},
		{Name: "Reading Glasses", Price: 499},
	}},
}

// marketplaceView lets residents browse the catalog, build a cart, and
// check out. The cart lives in the session store, so it survives tab
// switches and logout.
type marketplaceView struct {
	state  *SharedState
	cursor int
}

func newMarketplaceView(state *SharedState) *marketplaceView {
	return &marketplaceView{state: state}
}

func (v *marketplaceView) ID() ViewID    { return ViewMarketplace }
func (v *marketplaceView) Title() string { return "Marketplace" }

func (v *marketplaceView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add to cart")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "checkout")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "empty cart")),
	}
}

func (v *marketplaceView) Init() tea.Cmd { return nil }

// visibleItems returns the catalog filtered by the shared search query,
// flattened in section order.
func (v *marketplaceView) visibleItems() []catalogItem {
	query := strings.ToLower(v.state.SearchQuery())
	var items []catalogItem
	for _, section := range marketplaceCatalog {
		for _, item := range section.Items {
			if query == "" || strings.Contains(strings.ToLower(item.Name), query) {
				items = append(items, item)
			}
		}
	}
	return items
}

func (v *marketplaceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if items := v.visibleItems(); v.cursor >= len(items) {
			v.cursor = max(0, len(items)-1)
		}
		return v, nil

	case tea.KeyMsg:
		items := v.visibleItems()
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(items)-1 {
				v.cursor++
			}
		case "enter", "a":
			if v.cursor < len(items) {
				item := items[v.cursor]
				v.state.Store.AddToCart(item.Name, item.Price)
				return v, notify(fmt.Sprintf("Added %s to cart", item.Name), domain.SeveritySuccess)
			}
		case "c":
			if len(v.state.Store.Cart) > 0 {
				total := v.state.Store.CartTotal()
				v.state.Store.ClearCart()
				return v, notify(fmt.Sprintf("Order placed! Total: %s", formatter.Money(total)), domain.SeveritySuccess)
			}
		case "x":
			v.state.Store.ClearCart()
			return v, refreshViews()
		}
	}
	return v, nil
}

func (v *marketplaceView) View() string {
	var b strings.Builder
	query := strings.ToLower(v.state.SearchQuery())

	flatIdx := 0
	for _, section := range marketplaceCatalog {
		var lines []string
		for _, item := range section.Items {
			if query != "" && !strings.Contains(strings.ToLower(item.Name), query) {
				continue
			}
			cursor := "  "
			if flatIdx == v.cursor {
				cursor = formatter.StyleGreen.Render("▸ ")
			}
			lines = append(lines, fmt.Sprintf("  %s%s %s",
				cursor,
				formatter.PadRight(item.Name, 30),
				formatter.StyleBlue.Render(formatter.Money(item.Price)),
			))
			flatIdx++
		}
		if len(lines) > 0 {
			b.WriteString("\n  " + formatter.Header(section.Category) + "\n")
			b.WriteString(strings.Join(lines, "\n"))
			b.WriteString("\n")
		}
	}

	if flatIdx == 0 {
		b.WriteString("\n  " + formatter.Dim("No products match.") + "\n")
	}

	cart := v.state.Store.Cart
	b.WriteString("\n  " + formatter.Header("Your cart") + "\n")
	if len(cart) == 0 {
		b.WriteString("  " + formatter.Dim("Cart is empty.") + "\n")
		return b.String()
	}
	for _, item := range cart {
		b.WriteString(fmt.Sprintf("  %s %s\n",
			formatter.PadRight(item.Name, 30),
			formatter.Dim(formatter.Money(item.Price*item.Qty)),
		))
	}
	b.WriteString(fmt.Sprintf("\n  %s %s\n",
		formatter.Dim("Total"),
		formatter.Bold(formatter.Money(v.state.Store.CartTotal())),
	))

	return b.String()
}
