package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const runIDLength = 10

// GenerateRunID gera o identificador curto de uma execução do pipeline
func GenerateRunID() (string, error) {
	return gonanoid.Generate(characters, runIDLength)
}
