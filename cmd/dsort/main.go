package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/signalsciences/distinct"
)

// parseInts converts whitespace-separated tokens into integers
func parseInts(tokens []string) ([]int, error) {
	nums := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("not an integer: %q", tok)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// readStdin tokenizes whatever is piped in, one or more ints per line
func readStdin() ([]string, error) {
	var tokens []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		tokens = append(tokens, strings.Fields(scanner.Text())...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

func main() {
	flagSummary := flag.Bool("summary", false, "print stats about the distinct values instead of the values")
	flagQuiet := flag.Bool("quiet", false, "only print results")

	flag.Parse()

	if *flagQuiet {
		log.SetOutput(io.Discard)
	}

	tokens := flag.Args()
	if len(tokens) == 0 {
		log.Printf("no args, reading stdin")
		var err error
		tokens, err = readStdin()
		if err != nil {
			log.Fatalf("unable to read stdin: %s", err)
		}
	}

	nums, err := parseInts(tokens)
	if err != nil {
		log.Fatalf("bad input: %s", err)
	}

	if !distinct.NonEmpty(nums) {
		log.Fatalf("no input given")
	}

	if *flagSummary {
		s := distinct.Summarize(nums)
		fmt.Printf("total=%d distinct=%d dropped=%d min=%d max=%d median=%d p95=%d\n",
			s.Total, s.Distinct, s.Dropped, s.Min, s.Max, s.Median, s.P95)
		log.Printf("processing complete")
		return
	}

	out := distinct.Ints(nums)
	parts := make([]string, len(out))
	for i, n := range out {
		parts[i] = strconv.Itoa(n)
	}
	fmt.Println(strings.Join(parts, " "))
	log.Printf("processing complete")
}
