package models

import "time"

// Performer is an asset ranked by unrealized performance.
type Performer struct {
	Asset       Asset   `json:"asset"`
	Performance float64 `json:"performance"` // unrealized gain percentage
	Value       float64 `json:"value"`
	TotalGain   float64 `json:"total_gain"`
}

// DailyMover is an asset ranked by absolute 24h price movement.
type DailyMover struct {
	Asset         Asset   `json:"asset"`
	Change        float64 `json:"change"` // 24h percent change
	Value         float64 `json:"value"`
	Quantity      float64 `json:"quantity"`
	DailyGainLoss float64 `json:"daily_gain_loss"`
}

// PortfolioStats aggregates headline figures for the dashboard view.
type PortfolioStats struct {
	TotalValue            float64      `json:"total_value"`
	TotalInvestment       float64      `json:"total_investment"` // gross capital in: buys + deposits incl. fees
	DailyChange           float64      `json:"daily_change"`
	DailyChangePercentage float64      `json:"daily_change_percentage"`
	BestPerformer         *Performer   `json:"best_performer,omitempty"`
	WorstPerformer        *Performer   `json:"worst_performer,omitempty"`
	DailyMovers           []DailyMover `json:"daily_movers"`
}

// TimeFrame selects the span and resolution of a value history series.
type TimeFrame string

const (
	TimeFrame1H  TimeFrame = "1H"
	TimeFrame1D  TimeFrame = "1D"
	TimeFrame1W  TimeFrame = "1W"
	TimeFrame1M  TimeFrame = "1M"
	TimeFrameYTD TimeFrame = "YTD"
	TimeFrame1Y  TimeFrame = "1Y"
	TimeFrameAll TimeFrame = "ALL"
)

// validTimeFrames lists all accepted timeframes.
var validTimeFrames = map[TimeFrame]bool{
	TimeFrame1H:  true,
	TimeFrame1D:  true,
	TimeFrame1W:  true,
	TimeFrame1M:  true,
	TimeFrameYTD: true,
	TimeFrame1Y:  true,
	TimeFrameAll: true,
}

// ValidTimeFrame returns true if tf is a known timeframe.
func ValidTimeFrame(tf TimeFrame) bool {
	return validTimeFrames[tf]
}

// ValuePoint is a single point in a portfolio value time series.
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}
