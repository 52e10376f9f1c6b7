// Package geocoding loads geocoding provider credentials from the map server.
// Client performs the HTTP fetch; Loader applies the returned keys to the
// settings tree once and logs which providers are available.
package geocoding
