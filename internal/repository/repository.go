package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., mongo) inside this directory.
