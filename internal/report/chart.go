package report

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/Ajnunezg/StockTraderSim/internal/arbitrage"
	"github.com/Ajnunezg/StockTraderSim/internal/market"
	"github.com/pplcc/plotext"
	"github.com/pplcc/plotext/custplotter"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

var (
	buyColor     = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}
	sellColor    = color.RGBA{R: 0xc0, G: 0x39, B: 0x2b, A: 0xff}
	buyHoldColor = color.RGBA{R: 0x63, G: 0x6e, B: 0xfa, A: 0xff}
)

// RenderChart writes a PNG with two stacked panels sharing a time axis: a
// candlestick chart with buy and sell markers, and the strategy equity curve
// next to the buy-and-hold baseline.
func RenderChart(path string, s market.Session, trades []arbitrage.Trade, strategy, buyHold []EquityPoint) error {
	price, err := pricePanel(s, trades)
	if err != nil {
		return err
	}

	equity, err := equityPanel(strategy, buyHold)
	if err != nil {
		return err
	}

	return save(path, price, equity)
}

func pricePanel(s market.Session, trades []arbitrage.Trade) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Symbol() + " intraday"
	p.Y.Label.Text = "Price ($)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04"}

	data := make(custplotter.TOHLCVs, s.Len())
	for i, b := range s.Bars() {
		data[i].T = float64(b.Time.Unix())
		data[i].O, _ = b.Open.Float64()
		data[i].H, _ = b.High.Float64()
		data[i].L, _ = b.Low.Float64()
		data[i].C, _ = b.Close.Float64()
		data[i].V, _ = b.Volume.Float64()
	}

	candles, err := custplotter.NewCandlesticks(data)
	if err != nil {
		return nil, fmt.Errorf("failed to build candlestick plot: %w", err)
	}
	p.Add(candles)

	buys, sells := tradePoints(trades)
	if len(buys) > 0 {
		sc, err := plotter.NewScatter(buys)
		if err != nil {
			return nil, fmt.Errorf("failed to plot buy markers: %w", err)
		}
		sc.GlyphStyle.Shape = draw.PyramidGlyph{}
		sc.GlyphStyle.Color = buyColor
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add("buy", sc)
	}
	if len(sells) > 0 {
		sc, err := plotter.NewScatter(sells)
		if err != nil {
			return nil, fmt.Errorf("failed to plot sell markers: %w", err)
		}
		sc.GlyphStyle.Shape = draw.CrossGlyph{}
		sc.GlyphStyle.Color = sellColor
		sc.GlyphStyle.Radius = vg.Points(4)
		p.Add(sc)
		p.Legend.Add("sell", sc)
	}

	return p, nil
}

func tradePoints(trades []arbitrage.Trade) (buys, sells plotter.XYs) {
	for _, t := range trades {
		price, _ := t.Price.Float64()
		xy := plotter.XY{X: float64(t.Time.Unix()), Y: price}
		if t.Action == arbitrage.ActionBuy {
			buys = append(buys, xy)
		} else {
			sells = append(sells, xy)
		}
	}

	return buys, sells
}

func equityPanel(strategy, buyHold []EquityPoint) (*plot.Plot, error) {
	p := plot.New()
	p.Y.Label.Text = "Value ($)"
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04"}

	strategyLine, err := plotter.NewLine(equityXYs(strategy))
	if err != nil {
		return nil, fmt.Errorf("failed to plot strategy curve: %w", err)
	}
	strategyLine.Color = sellColor
	p.Add(strategyLine)
	p.Legend.Add("arbitrage", strategyLine)

	buyHoldLine, err := plotter.NewLine(equityXYs(buyHold))
	if err != nil {
		return nil, fmt.Errorf("failed to plot buy & hold curve: %w", err)
	}
	buyHoldLine.Color = buyHoldColor
	p.Add(buyHoldLine)
	p.Legend.Add("buy & hold", buyHoldLine)

	p.Legend.Top = true
	return p, nil
}

func equityXYs(points []EquityPoint) plotter.XYs {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		v, _ := pt.Value.Float64()
		xys[i] = plotter.XY{X: float64(pt.Time.Unix()), Y: v}
	}

	return xys
}

func save(path string, plots ...*plot.Plot) (err error) {
	var axis []*plot.Axis
	for _, p := range plots {
		axis = append(axis, &p.X)
	}
	plotext.UniteAxisRanges(axis)

	heights := make([]float64, len(plots))
	for i := range heights {
		heights[i] = 1
	}
	heights[0] = 2

	tbl := plotext.Table{
		RowHeights: heights,
		ColWidths:  []float64{1},
	}

	var plots2d [][]*plot.Plot
	for _, p := range plots {
		plots2d = append(plots2d, []*plot.Plot{p})
	}

	h := 0.0
	for _, v := range heights {
		h += v * 240
	}

	img := vgimg.New(vg.Points(960), vg.Points(h))
	dc := draw.New(img)

	canvases := tbl.Align(plots2d, dc)
	for i, p := range plots {
		p.Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close chart file: %w", cerr))
		}
	}()

	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write chart to file: %w", err)
	}

	return nil
}
