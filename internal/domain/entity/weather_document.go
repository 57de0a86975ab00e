package entity

import "time"

// WeatherDocument is one stored forecast, created by an ingest or a manual entry.
// The same location may have many documents.
type WeatherDocument struct {
	ID          string          `json:"id"`
	Location    string          `json:"location"`
	Data        ForecastPayload `json:"data"`
	CreatedDate time.Time       `json:"createdDate"`
	UpdatedDate time.Time       `json:"updatedDate"`
}

// ForecastPayload mirrors the OpenWeatherMap 5 day / 3 hour forecast response
type ForecastPayload struct {
	Cod     string          `json:"cod"`
	Message float64         `json:"message,omitempty"`
	Cnt     int             `json:"cnt,omitempty"`
	List    []ForecastEntry `json:"list"`
	City    *City           `json:"city,omitempty"`
}

// ForecastEntry is one timestamped observation of a forecast
type ForecastEntry struct {
	Dt      int64       `json:"dt,omitempty"`
	DtTxt   string      `json:"dt_txt"`
	Main    Main        `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    Wind        `json:"wind"`
	Clouds  *Clouds     `json:"clouds,omitempty"`
	Pop     float64     `json:"pop,omitempty"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like,omitempty"`
	TempMin   float64 `json:"temp_min,omitempty"`
	TempMax   float64 `json:"temp_max,omitempty"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type Wind struct {
	Speed float64 `json:"speed"`
	Deg   float64 `json:"deg,omitempty"`
	Gust  float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All int `json:"all"`
}

// Condition is a weather condition code with its human readable description
type Condition struct {
	ID          int    `json:"id,omitempty"`
	Main        string `json:"main,omitempty"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type City struct {
	ID         int64  `json:"id,omitempty"`
	Name       string `json:"name"`
	Country    string `json:"country,omitempty"`
	Coord      *Coord `json:"coord,omitempty"`
	Population int64  `json:"population,omitempty"`
	Timezone   int    `json:"timezone,omitempty"`
	Sunrise    int64  `json:"sunrise,omitempty"`
	Sunset     int64  `json:"sunset,omitempty"`
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// FindEntry returns the entry whose dt_txt equals timestamp exactly
func (d *WeatherDocument) FindEntry(timestamp string) *ForecastEntry {
	for i := range d.Data.List {
		if d.Data.List[i].DtTxt == timestamp {
			return &d.Data.List[i]
		}
	}
	return nil
}
