package views

import (
	"context"

	"superapp/pkg/logger"
	"superapp/pkg/navigation"
	"superapp/storage"
)

const (
	Home       navigation.ViewID = "home"
	DishCovery navigation.ViewID = "dishcovery"
	SkyFlow    navigation.ViewID = "skyflow"
	Profile    navigation.ViewID = "profile"
	QRScanner  navigation.ViewID = "qr-scanner"
)

func home() navigation.View {
	return navigation.View{
		ID:       Home,
		Title:    "Home",
		Sections: []string{"assistant", "shortcuts"},
		Stores:   []string{string(storage.StoreConversation)},
	}
}

// Routes returns the application's navigation table. Only the root view is
// available up front.
func Routes() []navigation.Route {
	return []navigation.Route{
		{Path: "/", Name: "home", Strategy: navigation.LoadEager, Target: Home, View: home()},
		{Path: "/dishcovery", Name: "dishcovery", Strategy: navigation.LoadLazy, Target: DishCovery, Load: deferred(dishCovery)},
		{Path: "/skyflow", Name: "skyflow", Strategy: navigation.LoadLazy, Target: SkyFlow, Load: deferred(skyFlow)},
		{Path: "/profile", Name: "profile", Strategy: navigation.LoadLazy, Target: Profile, Load: deferred(profile)},
		{Path: "/qr-scanner", Name: "qr-scanner", Strategy: navigation.LoadLazy, Target: QRScanner, Load: deferred(qrScanner)},
	}
}

func NewTable(basePath string, log logger.ILogger) (*navigation.Table, error) {
	return navigation.NewTable(basePath, log.With(logger.String("component", "navigation")), Routes()...)
}

func deferred(build func() navigation.View) navigation.Loader {
	return func(ctx context.Context) (navigation.View, error) {
		if err := ctx.Err(); err != nil {
			return navigation.View{}, err
		}
		return build(), nil
	}
}

func dishCovery() navigation.View {
	return navigation.View{
		ID:       DishCovery,
		Title:    "DishCovery",
		Sections: []string{"restaurants", "current_order", "order_history"},
		Stores:   []string{string(storage.StoreOrders)},
	}
}

func skyFlow() navigation.View {
	return navigation.View{
		ID:       SkyFlow,
		Title:    "SkyFlow",
		Sections: []string{"planner", "current_trip", "trip_history"},
		Stores:   []string{string(storage.StoreTrips)},
	}
}

func profile() navigation.View {
	return navigation.View{
		ID:       Profile,
		Title:    "Profile",
		Sections: []string{"account", "orders", "trips"},
		Stores:   []string{string(storage.StoreOrders), string(storage.StoreTrips)},
	}
}

func qrScanner() navigation.View {
	return navigation.View{
		ID:       QRScanner,
		Title:    "QR Scanner",
		Sections: []string{"camera"},
	}
}
