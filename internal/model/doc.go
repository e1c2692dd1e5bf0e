package model

// Package model defines domain data structures used across the app: download
// requests, media kinds, status and error-kind enums, and the events workers
// emit. Structures are designed for direct binding in the UI and explicit
// state transitions.
