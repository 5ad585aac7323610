package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/shopspring/decimal"
)

// WriteTradeLog renders the executed trades as a text table. Buys show N/A
// in the gain/loss column since nothing is realized until the sell.
func WriteTradeLog(w io.Writer, trades []arbitrage.Trade) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "TIME\tACTION\tPRICE\tSHARES\tGAIN/LOSS")
	for _, t := range trades {
		gain := "N/A"
		if t.Action == arbitrage.ActionSell {
			gain = "$" + t.GainLoss.StringFixed(2)
		}

		fmt.Fprintf(tw, "%s\t%s\t$%s\t%s\t%s\n",
			t.Time.Format("15:04:05"),
			t.Action,
			t.Price.StringFixed(2),
			t.Shares.StringFixed(4),
			gain)
	}

	return tw.Flush()
}

// WriteSummary renders the strategy outcome next to the buy-and-hold
// baseline.
func WriteSummary(w io.Writer, investment, endingValue, buyHold decimal.Decimal) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "STRATEGY\tFINAL VALUE\tRETURN\tVS BUY & HOLD")
	fmt.Fprintf(tw, "Arbitrage\t$%s\t%.2f%%\t$%s\n",
		endingValue.StringFixed(2),
		arbitrage.ReturnPct(endingValue, investment),
		endingValue.Sub(buyHold).StringFixed(2))
	fmt.Fprintf(tw, "Buy & Hold\t$%s\t%.2f%%\t$0.00\n",
		buyHold.StringFixed(2),
		arbitrage.ReturnPct(buyHold, investment))

	return tw.Flush()
}

// WriteComparison renders one row per simulated frequency, in the fixed
// frequency order.
func WriteComparison(w io.Writer, results []arbitrage.FrequencyResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "FREQUENCY\tFINAL VALUE\tRETURN\tTRADES")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t$%s\t%.2f%%\t%d\n",
			r.Frequency,
			r.FinalValue.StringFixed(2),
			r.ReturnPct,
			r.TradeCount)
	}

	return tw.Flush()
}

// WriteOpportunities renders the per-interval extrema pairs.
func WriteOpportunities(w io.Writer, opps []arbitrage.Opportunity) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "INTERVAL\tMIN LOW\tMAX HIGH\tPOTENTIAL")
	for _, o := range opps {
		fmt.Fprintf(tw, "%s\t$%s\t$%s\t%.2f%%\n",
			o.Start.Format("15:04"),
			o.MinLow.StringFixed(2),
			o.MaxHigh.StringFixed(2),
			o.ProfitPct)
	}

	return tw.Flush()
}
