package mapgen

import "html/template"

// mapTemplate is a self-contained Leaflet page: one marker with a popup
// summarizing the lookup, plus a circle showing the approximate coverage
// area around the country centroid.
var mapTemplate = template.Must(template.New("map").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Phone Location</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<style>
  html, body, #map { height: 100%; margin: 0; }
  .phone-popup { font-family: Arial, sans-serif; width: 250px; }
  .phone-popup h4 { color: #2c3e50; margin-bottom: 10px; }
  .phone-popup .caveat { color: #e74c3c; font-size: 11px; margin-top: 10px; }
</style>
</head>
<body>
<div id="map"></div>
<script>
  var map = L.map('map').setView([{{.Latitude}}, {{.Longitude}}], {{.Zoom}});
  L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png', {
    maxZoom: 19,
    attribution: '&copy; OpenStreetMap contributors'
  }).addTo(map);

  var popup = '<div class="phone-popup">' +
    '<h4>Phone Information</h4>' +
    '<p><strong>Number:</strong> {{.Number}}</p>' +
    '<p><strong>Country:</strong> {{.Country}}</p>' +
    '<p><strong>Carrier:</strong> {{.Carrier}}</p>' +
    '<p><strong>Timezone:</strong> {{.Timezone}}</p>' +
    '<p class="caveat">Approximate location based on country code</p>' +
    '</div>';

  L.marker([{{.Latitude}}, {{.Longitude}}])
    .bindPopup(popup, { maxWidth: 300 })
    .bindTooltip({{.Label}})
    .addTo(map);

  L.circle([{{.Latitude}}, {{.Longitude}}], {
    radius: {{.Radius}},
    color: 'red',
    fillColor: 'red',
    fillOpacity: 0.1
  }).bindPopup('Approximate coverage area').addTo(map);
</script>
</body>
</html>
`))
