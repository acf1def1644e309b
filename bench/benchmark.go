package main

import (
	"flag"
	"fmt"
	"net/http"
	"sync"
	"time"
)

func benchmarkDownload(url string, concurrent int, requests int) {
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < concurrent; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < requests/concurrent; j++ {
				resp, err := http.Get(url)
				if err == nil {
					resp.Body.Close()
				}
			}
		}()
	}

	wg.Wait()
	duration := time.Since(start)

	fmt.Printf("Completed %d requests in %v\n", requests, duration)
	fmt.Printf("QPS: %.2f\n", float64(requests)/duration.Seconds())
}

func main() {
	url := flag.String("url", "http://localhost:8080/packages/run:hello/1.0.0/artifact.wasm", "download URL to hammer")
	concurrent := flag.Int("c", 10, "concurrent workers")
	requests := flag.Int("n", 1000, "total request count")
	flag.Parse()

	benchmarkDownload(*url, *concurrent, *requests)
}
