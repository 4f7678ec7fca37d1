package models

import (
	"sort"
	"time"
)

// Stats is the admin overview payload.
type Stats struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalUsers     int            `json:"totalUsers"`
	TotalOrders    int            `json:"totalOrders"`
	UnreadMessages int            `json:"unreadMessages"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	Revenue        RevenueStats   `json:"revenue"`
	TopProducts    []ProductSales `json:"topProducts"`
	OutOfStock     []Product      `json:"outOfStock"`
	LowStock       []Product      `json:"lowStock"`
}

// RevenueStats are the windowed sums shown on the overview tab.
type RevenueStats struct {
	Today     int `json:"today"`
	Last7Days int `json:"last7Days"`
	ThisMonth int `json:"thisMonth"`
	ThisYear  int `json:"thisYear"`
}

// ProductSales decorates a product with its total sold quantity.
type ProductSales struct {
	Product
	Sold int `json:"sold"`
}

// RevenueDateLayout is the day key used by the revenue ledger.
const RevenueDateLayout = "2006-01-02"

// RevenueWithinDays sums ledger entries whose date falls within the
// last `days` days of now. Malformed date keys are skipped.
func RevenueWithinDays(revenue map[string]int, now time.Time, days int) int {
	sum := 0
	for date, val := range revenue {
		d, err := time.Parse(RevenueDateLayout, date)
		if err != nil {
			continue
		}
		diff := now.Sub(d).Hours() / 24
		if diff >= 0 && diff <= float64(days) {
			sum += val
		}
	}
	return sum
}

// RevenueThisMonth sums ledger entries in the current calendar month.
func RevenueThisMonth(revenue map[string]int, now time.Time) int {
	sum := 0
	for date, val := range revenue {
		d, err := time.Parse(RevenueDateLayout, date)
		if err != nil {
			continue
		}
		if d.Month() == now.Month() && d.Year() == now.Year() {
			sum += val
		}
	}
	return sum
}

// RevenueThisYear sums ledger entries in the current calendar year.
func RevenueThisYear(revenue map[string]int, now time.Time) int {
	sum := 0
	for date, val := range revenue {
		d, err := time.Parse(RevenueDateLayout, date)
		if err != nil {
			continue
		}
		if d.Year() == now.Year() {
			sum += val
		}
	}
	return sum
}

// CountByStatus folds an order list into per-status counts.
func CountByStatus(orders []Order) map[string]int {
	counts := make(map[string]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}

// SalesByProduct folds order items into a product id -> sold qty map.
func SalesByProduct(orders []Order) map[string]int {
	sales := make(map[string]int)
	for _, o := range orders {
		for _, item := range o.Items {
			sales[item.ProductID] += item.Qty
		}
	}
	return sales
}

// TopProducts decorates products with their sold counts and sorts best
// sellers first.
func TopProducts(products []Product, sales map[string]int) []ProductSales {
	out := make([]ProductSales, 0, len(products))
	for _, p := range products {
		out = append(out, ProductSales{Product: p, Sold: sales[p.ID.Hex()]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Sold > out[j].Sold })
	return out
}

// OutOfStock returns tracked products with zero stock. Products without
// a stock field are unlimited and never out of stock.
func OutOfStock(products []Product) []Product {
	out := []Product{}
	for _, p := range products {
		if p.Stock != nil && *p.Stock == 0 {
			out = append(out, p)
		}
	}
	return out
}

// LowStock returns tracked products with 1..5 units left.
func LowStock(products []Product) []Product {
	out := []Product{}
	for _, p := range products {
		if p.Stock != nil && *p.Stock > 0 && *p.Stock <= 5 {
			out = append(out, p)
		}
	}
	return out
}
