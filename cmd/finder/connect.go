package main

import (
	"context"
	"log"

	"github.com/grochain/listing-finder/pkg/catalog"
	"github.com/grochain/listing-finder/pkg/messaging"
	"github.com/grochain/listing-finder/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const changePrefix = "grochain"

type app struct {
	catalog *catalog.Catalog
	conn    *amqp.Connection
}

// ConnectAmqp refreshes a collection whenever the backend announces a change
// to it.
func (a *app) ConnectAmqp(amqpUrl string) error {
	conn, err := amqp.DialConfig(amqpUrl, amqp.Config{
		Properties: amqp.NewConnectionProperties(),
	})
	if err != nil {
		return err
	}
	a.conn = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	if err = messaging.DefineTopic(ch, changePrefix, messaging.ListingChanged); err != nil {
		return err
	}
	err = messaging.ListenToTopic(ch, changePrefix, messaging.ListingChanged, messaging.DecodeJson(func(change types.ListingChange) error {
		log.Printf("Got change for %s (%d ids)", change.Collection, len(change.Ids))
		a.catalog.HandleChange(change)
		return nil
	}))
	if err != nil {
		return err
	}
	log.Printf("Listening for listing changes")
	return nil
}

func (a *app) Close(_ context.Context) error {
	if a.conn == nil {
		return nil
	}
	return a.conn.Close()
}
