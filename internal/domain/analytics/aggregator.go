package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-admin-api/internal/domain/entity"
)

const (
	slotMinutes = 30
	dayLayout   = "2006-01-02"
)

var (
	hundred = decimal.NewFromInt(100)

	// Formatos de pickup_time aceptados; el resto se ignora en el histograma.
	pickupLayouts = []string{"15:04", "15:04:05", "3:04 PM", "3:04PM", "03:04 PM"}
)

// ValidDays informa si d es una de las ventanas aceptadas.
func ValidDays(d int) bool {
	for _, a := range AllowedDays {
		if a == d {
			return true
		}
	}
	return false
}

// Build calcula el Snapshot. Las colecciones vacías o nil producen totales en cero y slices vacíos (nunca nil).
//
// Las ventanas móviles 24h/7d/30d se calculan sobre todos los pagos recibidos; el resto de
// métricas solo sobre los registros dentro de opts.Days.
func Build(payments []*entity.Payment, orders []*entity.Order, opts Options) Snapshot {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	windowPayments := filterPayments(payments, opts.Now, opts.Days)
	windowOrders := filterOrders(orders, opts.Now, opts.Days)

	totals := buildTotals(windowPayments, windowOrders)
	totals.Revenue24h = revenueSince(payments, opts.Now.Add(-24*time.Hour))
	totals.Revenue7d = revenueSince(payments, opts.Now.AddDate(0, 0, -7))
	totals.Revenue30d = revenueSince(payments, opts.Now.AddDate(0, 0, -30))

	return Snapshot{
		GeneratedAt: opts.Now,
		Days:        opts.Days,
		Totals:      totals,
		Trends: Trends{
			Daily:       dailyTrend(windowPayments, windowOrders, loc),
			Hourly:      hourlyTrend(windowOrders, loc),
			PickupSlots: pickupSlots(windowOrders),
		},
		TopItems:       topItems(windowOrders, topN),
		TopCustomers:   topCustomers(windowOrders, topN),
		OrdersByStatus: ordersByStatus(windowOrders),
	}
}

func filterPayments(in []*entity.Payment, now time.Time, days int) []*entity.Payment {
	out := make([]*entity.Payment, 0, len(in))
	cutoff := now.AddDate(0, 0, -days)
	for _, p := range in {
		if p == nil {
			continue
		}
		if days > 0 && p.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterOrders(in []*entity.Order, now time.Time, days int) []*entity.Order {
	out := make([]*entity.Order, 0, len(in))
	cutoff := now.AddDate(0, 0, -days)
	for _, o := range in {
		if o == nil {
			continue
		}
		if days > 0 && o.CreatedAt.Before(cutoff) {
			continue
		}
		out = append(out, o)
	}
	return out
}

func buildTotals(payments []*entity.Payment, orders []*entity.Order) Totals {
	t := Totals{
		SuccessAmount:     decimal.Zero,
		FailedAmount:      decimal.Zero,
		PendingAmount:     decimal.Zero,
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		SuccessRate:       decimal.Zero,
		FailureRate:       decimal.Zero,
		PendingRate:       decimal.Zero,
		OrdersTotal:       decimal.Zero,
	}
	for _, p := range payments {
		t.PaymentCount++
		switch p.Status {
		case entity.PaymentSuccess:
			t.SuccessCount++
			t.SuccessAmount = t.SuccessAmount.Add(p.Amount)
		case entity.PaymentFailed:
			t.FailedCount++
			t.FailedAmount = t.FailedAmount.Add(p.Amount)
		case entity.PaymentPending:
			t.PendingCount++
			t.PendingAmount = t.PendingAmount.Add(p.Amount)
		}
	}
	t.TotalRevenue = t.SuccessAmount
	if t.SuccessCount > 0 {
		t.AverageOrderValue = t.TotalRevenue.Div(decimal.NewFromInt(int64(t.SuccessCount))).Round(2)
	}
	t.SuccessRate = percent(t.SuccessCount, t.PaymentCount)
	t.FailureRate = percent(t.FailedCount, t.PaymentCount)
	t.PendingRate = percent(t.PendingCount, t.PaymentCount)

	for _, o := range orders {
		t.OrderCount++
		t.OrdersTotal = t.OrdersTotal.Add(o.Total)
	}
	return t
}

func revenueSince(payments []*entity.Payment, since time.Time) decimal.Decimal {
	sum := decimal.Zero
	for _, p := range payments {
		if p == nil || p.Status != entity.PaymentSuccess {
			continue
		}
		if p.CreatedAt.Before(since) {
			continue
		}
		sum = sum.Add(p.Amount)
	}
	return sum
}

func dailyTrend(payments []*entity.Payment, orders []*entity.Order, loc *time.Location) []DailyStat {
	byDay := make(map[string]*DailyStat)
	get := func(t time.Time) *DailyStat {
		key := t.In(loc).Format(dayLayout)
		d, ok := byDay[key]
		if !ok {
			d = &DailyStat{Date: key, Revenue: decimal.Zero}
			byDay[key] = d
		}
		return d
	}
	for _, p := range payments {
		if p.Status != entity.PaymentSuccess {
			continue
		}
		d := get(p.CreatedAt)
		d.Revenue = d.Revenue.Add(p.Amount)
	}
	for _, o := range orders {
		get(o.CreatedAt).Orders++
	}

	out := make([]DailyStat, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	// YYYY-MM-DD ordena cronológicamente como texto
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func hourlyTrend(orders []*entity.Order, loc *time.Location) []HourlyStat {
	out := make([]HourlyStat, 24)
	for h := range out {
		out[h].Hour = h
	}
	for _, o := range orders {
		out[o.CreatedAt.In(loc).Hour()].Orders++
	}
	return out
}

func pickupSlots(orders []*entity.Order) []SlotStat {
	counts := make(map[string]int)
	for _, o := range orders {
		slot, ok := PickupSlot(o.PickupTime)
		if !ok {
			continue
		}
		counts[slot]++
	}
	out := make([]SlotStat, 0, len(counts))
	for slot, n := range counts {
		out = append(out, SlotStat{Slot: slot, Orders: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slot < out[j].Slot })
	return out
}

// PickupSlot redondea una hora de recogida hacia abajo a su franja de 30 minutos ("13:47" -> "13:30").
func PickupSlot(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range pickupLayouts {
		t, err := time.Parse(layout, strings.ToUpper(raw))
		if err != nil {
			continue
		}
		m := (t.Minute() / slotMinutes) * slotMinutes
		return time.Date(0, 1, 1, t.Hour(), m, 0, 0, time.UTC).Format("15:04"), true
	}
	return "", false
}

func topItems(orders []*entity.Order, n int) []ItemStat {
	byName := make(map[string]*ItemStat)
	for _, o := range orders {
		for _, it := range o.Items {
			name := strings.TrimSpace(it.Name)
			if name == "" || it.Quantity <= 0 {
				continue
			}
			s, ok := byName[name]
			if !ok {
				s = &ItemStat{Name: name, Category: it.Category, Revenue: decimal.Zero}
				byName[name] = s
			}
			s.Quantity += it.Quantity
			s.Revenue = s.Revenue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	out := make([]ItemStat, 0, len(byName))
	for _, s := range byName {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Name < out[j].Name
	})
	return truncate(out, n)
}

func topCustomers(orders []*entity.Order, n int) []CustomerStat {
	type acc struct {
		stat     CustomerStat
		lastSeen time.Time
		lastID   string
	}
	byPhone := make(map[string]*acc)
	for _, o := range orders {
		phone := strings.TrimSpace(o.Phone)
		if phone == "" {
			continue
		}
		a, ok := byPhone[phone]
		if !ok {
			a = &acc{stat: CustomerStat{Phone: phone, Name: o.Name, Revenue: decimal.Zero}, lastSeen: o.CreatedAt, lastID: o.ID}
			byPhone[phone] = a
		}
		a.stat.Orders++
		a.stat.Revenue = a.stat.Revenue.Add(o.Total)
		// El nombre vigente es el del pedido más reciente; a igual created_at gana el id mayor
		if o.CreatedAt.After(a.lastSeen) || (o.CreatedAt.Equal(a.lastSeen) && o.ID > a.lastID) {
			a.lastSeen, a.lastID = o.CreatedAt, o.ID
			a.stat.Name = o.Name
		}
	}

	out := make([]CustomerStat, 0, len(byPhone))
	for _, a := range byPhone {
		out = append(out, a.stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Revenue.Cmp(out[j].Revenue); c != 0 {
			return c > 0
		}
		return out[i].Phone < out[j].Phone
	})
	return truncate(out, n)
}

func ordersByStatus(orders []*entity.Order) []StatusStat {
	counts := make(map[string]int)
	for _, o := range orders {
		status := o.Status
		if status == "" {
			status = "unknown"
		}
		counts[status]++
	}
	out := make([]StatusStat, 0, len(counts))
	for status, c := range counts {
		out = append(out, StatusStat{Status: status, Count: c, Percentage: percent(c, len(orders))})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Status < out[j].Status
	})
	return out
}

func percent(part, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(part)).Mul(hundred).Div(decimal.NewFromInt(int64(total))).Round(2)
}

func truncate[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
