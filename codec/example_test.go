package codec_test

import (
	"fmt"
	"strings"

	"github.com/arloliu/go-videohub/codec"
	"github.com/arloliu/go-videohub/logger"
	"github.com/arloliu/go-videohub/videohub"
)

func ExampleCodec() {
	c, err := codec.New(codec.WithLogger(logger.NewNop()))
	if err != nil {
		panic(err)
	}

	// bytes arrive in arbitrary chunks
	for _, chunk := range []string{"VIDEO OUTPUT RO", "UTING:\r\n0 3\r\n1 2\r\n", "\r\nACK\n\n"} {
		_, _ = c.Write([]byte(chunk))
		for {
			msg, err := c.Next()
			if err != nil {
				panic(err)
			}
			if msg == nil {
				break
			}

			switch m := msg.(type) {
			case *videohub.Routing:
				for _, r := range m.Entries {
					fmt.Printf("output %d <- input %d\n", r.Output, r.Input)
				}
			default:
				fmt.Println(m.Kind())
			}
		}
	}

	// Output:
	// output 0 <- input 3
	// output 1 <- input 2
	// ack
}

func ExampleReader() {
	stream := "PROTOCOL PREAMBLE:\nVersion: 2.8\n\nINPUT LABELS:\n0 Camera 1\n\n"

	rd, err := codec.NewReader(strings.NewReader(stream), codec.WithLogger(logger.NewNop()))
	if err != nil {
		panic(err)
	}

	for {
		msg, err := rd.ReadMessage()
		if err != nil {
			fmt.Println(err)
			break
		}
		fmt.Println(msg.Kind(), msg.Header())
	}

	// Output:
	// preamble PROTOCOL PREAMBLE:
	// input-labels INPUT LABELS:
	// EOF
}

func ExampleWriter() {
	var sb strings.Builder

	wr, err := codec.NewWriter(&sb)
	if err != nil {
		panic(err)
	}
	_ = wr.WriteMessage(videohub.NewVideoOutputRouting(videohub.Route{Output: 4, Input: 1}))
	fmt.Printf("%q\n", sb.String())

	// Output:
	// "VIDEO OUTPUT ROUTING:\n4 1\n\n"
}
