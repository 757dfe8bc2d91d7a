package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"pulsehr.com/pulsehr/activity"
	v1 "pulsehr.com/pulsehr/pulse/v1"
)

// apiSender forwards monitor heartbeats to the service.
type apiSender struct {
	client *v1.PulseClient
}

func (s *apiSender) SendHeartbeat(hb activity.Heartbeat) error {
	dto := &v1.HeartbeatDTO{
		Timestamp:       hb.Timestamp,
		Active:          hb.Active,
		Suspicious:      hb.Suspicious,
		PatternType:     hb.PatternType,
		PatternDetails:  hb.PatternDetails,
		ConfidenceScore: hb.ConfidenceScore,
	}
	if hb.Confidence != nil {
		level := string(*hb.Confidence)
		dto.Confidence = &level
	}
	return s.client.Attendance.SendHeartbeat(dto)
}

// The agent punches in, streams input events from stdin into the session
// monitor and punches out on EOF or "quit". Event lines:
//
//	pointer <x> <y>
//	key <code>
//	click <button>
func main() {
	baseURL := flag.String("url", "http://localhost:8090", "service base URL")
	token := flag.String("token", os.Getenv("PULSEHR_TOKEN"), "bearer token")
	flag.Parse()

	if *token == "" {
		log.Fatal("no token: pass -token or set PULSEHR_TOKEN")
	}

	client := v1.NewPulseClient(*baseURL, *token)

	record, err := client.Attendance.PunchIn()
	if err != nil {
		log.Fatalf("punch-in failed: %v", err)
	}
	fmt.Printf("punched in: session %d on %s\n", record.ID, record.WorkDate)

	monitor := activity.NewSessionMonitor(&apiSender{client: client})
	monitor.Start(context.Background())
	defer monitor.Stop()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}
		if err := dispatch(monitor, client, line); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
	}

	record, err = client.Attendance.PunchOut()
	if err != nil {
		log.Fatalf("punch-out failed: %v", err)
	}
	fmt.Printf("punched out: %.2f hours worked, %.2f on break\n",
		record.TotalHours, record.BreakDuration)
}

func dispatch(monitor *activity.SessionMonitor, client *v1.PulseClient, line string) error {
	fields := strings.Fields(line)
	now := time.Now()

	switch fields[0] {
	case "pointer":
		if len(fields) != 3 {
			return fmt.Errorf("usage: pointer <x> <y>")
		}
		x, errX := strconv.ParseFloat(fields[1], 64)
		y, errY := strconv.ParseFloat(fields[2], 64)
		if errX != nil || errY != nil {
			return fmt.Errorf("bad pointer coordinates: %q", line)
		}
		monitor.RecordPointer(x, y, now)
	case "key":
		if len(fields) != 2 {
			return fmt.Errorf("usage: key <code>")
		}
		monitor.RecordKey(fields[1], now)
	case "click":
		if len(fields) != 2 {
			return fmt.Errorf("usage: click <button>")
		}
		monitor.RecordClick(fields[1], now)
	case "break-start":
		_, err := client.Attendance.StartBreak()
		return err
	case "break-end":
		_, err := client.Attendance.EndBreak()
		return err
	default:
		return fmt.Errorf("unknown event: %q", fields[0])
	}
	return nil
}
