package main

type Config struct {
	LogLevel  string `env:"LOG_LEVEL,default=info"`
	Seed      int64  `env:"SEED"`
	Colours   bool   `env:"COLOURS,default=true"`
	ChunkSize int    `env:"CHUNK_SIZE,default=3"`
}
