/*
 * a basic CLI around the wordaddr codec: convert a socket endpoint to
 * its word sequence and back
 */
package main

import (
	"flag"
	"fmt"
	"os"

	wordaddr "github.com/dirvine/three-word-networking"
	"github.com/dirvine/three-word-networking/internal/wjson"
	"github.com/rs/zerolog"
)

var (
	opt_decode = flag.Bool("decode", false, "treat the argument as a word sequence to decode, not an address")
	opt_quiet  = flag.Bool("quiet", false, "suppress diagnostic logging")
	opt_json   = flag.Bool("json", false, "read/write JSON instead of plain text")
)

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: wordaddr [OPTIONS] <address:port | word sequence>\n")
		os.Exit(2)
	}

	logger := zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()
	if *opt_quiet {
		logger = logger.Level(zerolog.Disabled)
	}

	c := wordaddr.NewCodec(wordaddr.Options{Logger: &logger})
	arg := flag.Arg(0)

	if *opt_decode {
		decode(c, arg)
		return
	}
	encode(c, arg)
}

func decode(c *wordaddr.Codec, arg string) {
	var e wordaddr.Endpoint
	var err error
	if *opt_json {
		e, err = c.DecodeJSON([]byte(arg))
	} else {
		e, err = c.Decode(arg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		os.Exit(3)
	}

	if *opt_json {
		fmt.Println(string(wjson.EndpointToJSON(nil, toWireEndpoint(e))))
	} else {
		fmt.Println(e.String())
	}
}

func encode(c *wordaddr.Codec, arg string) {
	var e wordaddr.Endpoint
	var err error
	if *opt_json {
		var we wjson.Endpoint
		we, err = wjson.EndpointFromJSON([]byte(arg))
		if err == nil {
			e, err = fromWireEndpoint(we)
		}
	} else {
		e, err = wordaddr.ParseEndpoint(arg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		os.Exit(2)
	}

	var out []byte
	if *opt_json {
		out, err = c.EncodeJSON(e)
	} else {
		var s string
		s, err = c.Encode(e)
		out = []byte(s)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// toWireEndpoint and fromWireEndpoint bridge wordaddr.Endpoint and
// wjson.Endpoint: wjson can't import the root package (the root
// package imports wjson for Codec.EncodeJSON/DecodeJSON), so this
// glue lives here instead, the one place that legitimately needs both
// types.
func toWireEndpoint(e wordaddr.Endpoint) wjson.Endpoint {
	if e.Family == wordaddr.FamilyIPv4 {
		return wjson.Endpoint{Family: "ipv4", Address: e.IPv4.Address, Port: e.IPv4.Port}
	}
	return wjson.Endpoint{
		Family: "ipv6", Address: e.IPv6.Address, Port: e.IPv6.Port,
		Flow: e.IPv6.Flow, Scope: e.IPv6.Scope,
	}
}

func fromWireEndpoint(we wjson.Endpoint) (wordaddr.Endpoint, error) {
	switch we.Family {
	case "ipv4":
		return wordaddr.NewIPv4Endpoint(we.Address, we.Port)
	case "ipv6":
		return wordaddr.NewIPv6Endpoint(we.Address, we.Port, we.Flow, we.Scope)
	default:
		return wordaddr.Endpoint{}, wordaddr.ErrMalformedAddress
	}
}
