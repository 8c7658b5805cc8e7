package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RiskFreeRate is one row of a central bank rate series. RatePct is the
// annual rate in percent, e.g. 5.33 for 5.33%.
type RiskFreeRate struct {
	Date    time.Time
	RatePct float64
}

// FedRateDTO matches the semicolon separated FED export, which uses a
// decimal comma.
type FedRateDTO struct {
	Date string `csv:"date"`
	Rate string `csv:"rate"`
}

func (dto *FedRateDTO) ToModel() (*RiskFreeRate, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, fmt.Errorf("FedRateDTO: ToModel: error parsing date %s: %v", dto.Date, err)
	}

	rate, err := strconv.ParseFloat(strings.Replace(dto.Rate, ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Errorf("FedRateDTO: ToModel: error parsing rate %s: %v", dto.Rate, err)
	}

	return &RiskFreeRate{
		Date:    date,
		RatePct: rate,
	}, nil
}

// EcbRateDTO matches the ECB key interest rate export. The main refinancing
// rate is the one carried into the model.
type EcbRateDTO struct {
	Date                   string `csv:"date"`
	DepositRate            string `csv:"deposit_rate"`
	MarginalLendingRate    string `csv:"marginal_lending_rate"`
	MainRefinancingOpsRate string `csv:"main_refinancing_rate"`
}

func (dto *EcbRateDTO) ToModel() (*RiskFreeRate, error) {
	date, err := time.Parse("2006-01-02", dto.Date)
	if err != nil {
		return nil, fmt.Errorf("EcbRateDTO: ToModel: error parsing date %s: %v", dto.Date, err)
	}

	rate, err := strconv.ParseFloat(dto.MainRefinancingOpsRate, 64)
	if err != nil {
		return nil, fmt.Errorf("EcbRateDTO: ToModel: error parsing rate %s: %v", dto.MainRefinancingOpsRate, err)
	}

	return &RiskFreeRate{
		Date:    date,
		RatePct: rate,
	}, nil
}
