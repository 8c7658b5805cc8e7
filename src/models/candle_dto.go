package models

import (
	"fmt"
	"strconv"
	"time"
)

type CandleDTO struct {
	Timestamp string `csv:"time" json:"time"`
	Open      string `csv:"open" json:"open"`
	High      string `csv:"high" json:"high"`
	Low       string `csv:"low" json:"low"`
	Close     string `csv:"close" json:"close"`
}

func (dto *CandleDTO) ToModel() (*Candle, error) {
	t, err := time.Parse(time.RFC3339, dto.Timestamp)
	if err != nil {
		t, err = time.Parse("2006-01-02", dto.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("CandleDTO: ToModel: error parsing time %s: %v", dto.Timestamp, err)
		}
	}

	open, err := strconv.ParseFloat(dto.Open, 64)
	if err != nil {
		return nil, fmt.Errorf("CandleDTO: ToModel: error parsing Open: %v", err)
	}

	high, err := strconv.ParseFloat(dto.High, 64)
	if err != nil {
		return nil, fmt.Errorf("CandleDTO: ToModel: error parsing High: %v", err)
	}

	low, err := strconv.ParseFloat(dto.Low, 64)
	if err != nil {
		return nil, fmt.Errorf("CandleDTO: ToModel: error parsing Low: %v", err)
	}

	c, err := strconv.ParseFloat(dto.Close, 64)
	if err != nil {
		return nil, fmt.Errorf("CandleDTO: ToModel: error parsing Close: %v", err)
	}

	return &Candle{
		Timestamp: t,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     c,
	}, nil
}
