package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/BareRose/ranxoshi256/rng"
)

func init() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Fatalf("loading dotenv failed: %s", err)
	}
}

func main() {
	args := struct {
		Seed      string `name:"seed" short:"s" help:"Seed material as 64 hex characters (32 bytes), defaults to the RNG_SEED environment variable"`
		Count     int    `name:"count" short:"n" default:"16" help:"Outputs to emit per stream"`
		Format    string `name:"format" short:"f" enum:"hex,uint64,float-co,float-cc,double-co,double-cc" default:"hex" help:"Output format"`
		Streams   int    `name:"streams" default:"1" help:"Number of jump-partitioned streams to emit"`
		ShowState bool   `name:"show_state" help:"Dump each stream's final state after its outputs"`
	}{}

	_ = kong.Parse(&args)

	seedHex := args.Seed
	if seedHex == "" {
		seedHex = os.Getenv("RNG_SEED")
	}

	seedBytes, err := hex.DecodeString(seedHex)
	if err != nil {
		log.Fatalf("bad seed material: %s", err)
	}

	if len(seedBytes) != 32 {
		log.Fatalf("bad seed material: want 32 bytes, got %d", len(seedBytes))
	}

	var seed [32]byte
	copy(seed[:], seedBytes)

	// master holds the start of the current stream; each stream emits from
	// a copy so stream i always starts exactly i jumps past the seed
	master := rng.NewXoshiro256SS()
	master.Seed(seed)

	for i := 0; i < args.Streams; i++ {
		if args.Streams > 1 {
			fmt.Printf("stream %d:\n", i)
		}

		stream := *master

		for j := 0; j < args.Count; j++ {
			switch args.Format {
			case "hex":
				fmt.Printf("%016x\n", stream.Next())
			case "uint64":
				fmt.Println(stream.Next())
			case "float-co":
				fmt.Println(stream.FloatCO())
			case "float-cc":
				fmt.Println(stream.FloatCC())
			case "double-co":
				fmt.Println(stream.DoubleCO())
			case "double-cc":
				fmt.Println(stream.DoubleCC())
			}
		}

		if args.ShowState {
			fmt.Printf("state: %s\n", &stream)
		}

		master.Jump128()
	}
}
