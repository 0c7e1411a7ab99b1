package chart

import (
	"fmt"
	"html/template"
	"os"
)

// stadiumMapTmpl is the Leaflet document written per team: map centred on
// the stadium at zoom 16, one marker with the stadium name as popup and the
// team name as tooltip.
var stadiumMapTmpl = template.Must(template.New("stadium_map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Team}} 홈구장</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"/>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>html, body, #map { height: 100%; margin: 0; }</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map("map").setView([{{.Lat}}, {{.Lon}}], {{.Zoom}});
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
	maxZoom: 19,
	attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);
L.marker([{{.Lat}}, {{.Lon}}]).addTo(map)
	.bindPopup({{.Stadium}})
	.bindTooltip({{.Team}});
</script>
</body>
</html>
`))

// stadiumZoom matches the street-level framing of the stadium block.
const stadiumZoom = 16

// StadiumMap writes a team's stadium map HTML to static/maps/map_{team}.html.
func (r *Renderer) StadiumMap(team string, lat, lon float64, stadium string) error {
	path := r.catalog.StadiumMap(team)
	if err := r.catalog.Ensure(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	data := struct {
		Team    string
		Stadium string
		Lat     float64
		Lon     float64
		Zoom    int
	}{Team: team, Stadium: stadium, Lat: lat, Lon: lon, Zoom: stadiumZoom}

	if err := stadiumMapTmpl.Execute(f, data); err != nil {
		return fmt.Errorf("render stadium map: %w", err)
	}
	return nil
}
