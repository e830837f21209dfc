package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const DefaultIDLength = 12

// GenerateID gera um identificador alfanumérico com o tamanho informado
func GenerateID(length int) (string, error) {
	if length <= 0 {
		length = DefaultIDLength
	}
	return gonanoid.Generate(characters, length)
}
