package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/checkoutflow/lib/mypublisher"
	"github.com/MarcGrol/checkoutflow/lib/mypubsub"
	"github.com/MarcGrol/checkoutflow/lib/myqueue"
	"github.com/MarcGrol/checkoutflow/lib/mystore"
	"github.com/MarcGrol/checkoutflow/lib/mytime"
	"github.com/MarcGrol/checkoutflow/lib/myuuid"
	"github.com/MarcGrol/checkoutflow/services/carttotal"
	"github.com/MarcGrol/checkoutflow/services/checkout"
	"github.com/MarcGrol/checkoutflow/services/checkoutapi"
	"github.com/MarcGrol/checkoutflow/services/customerprefs"
	"github.com/MarcGrol/checkoutflow/services/orderhistory"
	"github.com/MarcGrol/checkoutflow/services/paymentmethods"
	"github.com/MarcGrol/checkoutflow/services/paymentselection"
	"github.com/MarcGrol/checkoutflow/services/warmup"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	nower := mytime.RealNower{}
	uuider := myuuid.RealUUIDer{}

	pubsub, pubsubCleanup, err := mypubsub.New(c)
	if err != nil {
		log.Fatalf("Error creating pubsub: %s", err)
	}
	defer pubsubCleanup()

	queue, queueCleanup, err := myqueue.New(c)
	if err != nil {
		log.Fatalf("Error creating task queue: %s", err)
	}
	defer queueCleanup()

	publisher, publisherCleanup, err := mypublisher.New(c, pubsub, queue, nower)
	if err != nil {
		log.Fatalf("Error creating publisher: %s", err)
	}
	defer publisherCleanup()
	publisher.RegisterEndpoints(c, router)

	sessionStore, sessionStoreCleanup, err := mystore.New[checkoutapi.CheckoutSession](c)
	if err != nil {
		log.Fatalf("Error creating session store: %s", err)
	}
	defer sessionStoreCleanup()

	orderStore, orderStoreCleanup, err := mystore.New[orderhistory.Order](c)
	if err != nil {
		log.Fatalf("Error creating order store: %s", err)
	}
	defer orderStoreCleanup()

	prefStore, prefStoreCleanup, err := mystore.New[customerprefs.Preference](c)
	if err != nil {
		log.Fatalf("Error creating preference store: %s", err)
	}
	defer prefStoreCleanup()

	catalog := paymentmethods.NewCatalog(
		paymentmethods.Entry{
			SystemName: paymentmethods.AdyenCardSystemName,
			Active:     true,
			Method: paymentmethods.NewAdyenCardMethod(paymentmethods.AdyenConfig{
				MerchantAccount: os.Getenv("ADYEN_MERCHANT_ACCOUNT"),
			}),
		},
		paymentmethods.Entry{
			SystemName: paymentmethods.MollieIdealSystemName,
			Active:     true,
			Method:     paymentmethods.NewMollieIdealMethod(),
		},
		paymentmethods.Entry{
			SystemName: paymentmethods.StripeCardSystemName,
			Active:     os.Getenv("STRIPE_ENABLED") != "",
			Method:     paymentmethods.NewStripeCardMethod(),
		},
	)

	policy := paymentselection.Policy{
		SkipPaymentIfSingleMethod: os.Getenv("DISABLE_SINGLE_METHOD_SKIP") == "",
		QuickCheckoutEnabled:      os.Getenv("DISABLE_QUICK_CHECKOUT") == "",
	}

	checkoutService := checkout.NewWebService(sessionStore, catalog, carttotal.New(),
		orderhistory.New(orderStore), customerprefs.New(prefStore, nower), publisher, policy, nower, uuider)
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering checkout service: %s", err)
	}

	orderHistoryService := orderhistory.NewService(orderStore, nower, pubsub)
	err = orderHistoryService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering order history service: %s", err)
	}

	warmup.NewService(sessionStore).RegisterEndpoints(c, router)

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), router)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
