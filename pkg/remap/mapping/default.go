package mapping

import "github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/pkg/remap/models"

var defaultPairs = []models.Pair{
	{From: "CGG01A", To: "CGK01A"},
	{From: "CGG01M", To: "CGK01M"},
	{From: "CGG05A", To: "CGK05A"},
	{From: "CGG05M", To: "CGK05M"},
	{From: "CGG10A", To: "CGK10A"},
	{From: "CGG10M", To: "CGK10M"},
	{From: "CGH01A", To: "CGL01A"},
	{From: "CGH01H", To: "CGL01H"},
	{From: "CGH01M", To: "CGL01M"},
	{From: "CGH05A", To: "CGL05A"},
	{From: "CGH05H", To: "CGL05H"},
	{From: "CGH05M", To: "CGL05M"},
	{From: "CGH10A", To: "CGL10A"},
	{From: "CGH10H", To: "CGL10H"},
	{From: "CGH10M", To: "CGL10M"},
	{From: "CGI01A", To: "CGM01A"},
	{From: "CGI01H", To: "CGM01H"},
	{From: "CGI01M", To: "CGM01M"},
	{From: "CGI05A", To: "CGM05A"},
	{From: "CGI05H", To: "CGM05H"},
	{From: "CGI05M", To: "CGM05M"},
	{From: "CGI10A", To: "CGM10A"},
	{From: "CGI10H", To: "CGM10H"},
	{From: "CGI10M", To: "CGM10M"},
	{From: "CGJ01A", To: "CGN01A"},
	{From: "CGJ01H", To: "CGN01H"},
	{From: "CGJ01M", To: "CGN01M"},
	{From: "CGJ05A", To: "CGN05A"},
	{From: "CGJ05H", To: "CGN05H"},
	{From: "CGJ05M", To: "CGN05M"},
	{From: "CGJ10A", To: "CGN10A"},
	{From: "CGJ10H", To: "CGN10H"},
	{From: "CGJ10M", To: "CGN10M"},
}

// Default returns the built-in CGG..CGJ → CGK..CGN product mapping.
func Default() *models.Mapping {
	m, err := models.NewMapping(defaultPairs)
	if err != nil {
		panic(err)
	}
	return m
}
