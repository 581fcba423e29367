package main

import (
	"context"
	"fmt"
)

func (cli *commandLine) listRequests() error {
	reqs, err := cli.reqSvc.Query(context.Background())
	if err != nil {
		return err
	}
	for _, req := range reqs {
		fmt.Printf("%s  %-10s %s - %s\n", req.ID, req.Status, req.StudentName, req.Description)
	}
	return nil
}
