// Package application wires the settings store, geocoding credential loader,
// API router and HTTP server together. Startup is two-phase: New builds the
// default settings synchronously, and Enrich loads geocoding credentials under a
// bounded timeout before the application reports ready.
package application
