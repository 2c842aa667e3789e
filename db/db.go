package db

import (
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/halfdim/progen/constants"
	"github.com/halfdim/progen/model"
)

func newClient() (*dynamodb.DynamoDB, error) {
	endpoint := constants.GetDynamoEndpoint()
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create a DynamoDB session: %w", err)
	}
	return dynamodb.New(sess), nil
}

// PutDrills writes one history item per drill.
func PutDrills(records []model.DrillRecord) error {
	if len(records) == 0 {
		return nil
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	table := constants.GetHistoryTable()
	for _, rec := range records {
		input := &dynamodb.PutItemInput{
			TableName: aws.String(table),
			Item: map[string]*dynamodb.AttributeValue{
				"PK":          {S: aws.String(rec.Id)},
				"Key":         {S: aws.String(rec.Key)},
				"Progression": {S: aws.String(rec.Progression)},
				"Narration":   {S: aws.String(rec.Narration)},
				"TotalTicks":  {N: aws.String(strconv.FormatUint(rec.TotalTicks, 10))},
				"CreatedAt":   {S: aws.String(rec.CreatedAt)},
			},
		}
		if _, err := client.PutItem(input); err != nil {
			return fmt.Errorf("error from DynamoDB: %w", err)
		}
	}
	return nil
}

// GetDrills fetches history items by drill id.
func GetDrills(ids []string) (map[string]model.DrillRecord, error) {
	res := make(map[string]model.DrillRecord)
	if len(ids) == 0 {
		return res, nil
	}
	if len(ids) > 10 {
		return nil, fmt.Errorf("at most 10 drill ids per fetch, got %v", len(ids))
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, id := range ids {
		keys = append(keys, map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(id)},
		})
	}

	client, err := newClient()
	if err != nil {
		return nil, err
	}

	table := constants.GetHistoryTable()
	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			table: {Keys: keys},
		},
	}
	dbres, err := client.BatchGetItem(input)
	if err != nil {
		return nil, fmt.Errorf("error from DynamoDB: %w", err)
	}

	for _, v := range dbres.Responses[table] {
		var rec model.DrillRecord
		rec.Id = *v["PK"].S
		rec.Key = *v["Key"].S
		rec.Progression = *v["Progression"].S
		rec.Narration = *v["Narration"].S
		if v["TotalTicks"].N != nil {
			ticks, _ := strconv.ParseUint(*v["TotalTicks"].N, 10, 64)
			rec.TotalTicks = ticks
		}
		rec.CreatedAt = *v["CreatedAt"].S
		res[rec.Id] = rec
	}
	return res, nil
}
