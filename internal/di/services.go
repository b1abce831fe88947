package di

// Shared services, registered without arguments.
const (
	ServiceLogger              Service = "Logger"
	ServiceStoreContext        Service = "StoreContext"
	ServiceNavigationStack     Service = "NavigationStack"
	ServicePresenter           Service = "AlertPresenter"
	ServiceTheme               Service = "ThemeConfiguration"
	ServiceTracker             Service = "AnalyticsTracker"
	ServiceUnits               Service = "UnitsModelController"
	ServiceSequenceSettings    Service = "SequenceSettingsModelController"
	ServiceKeyValueStore       Service = "KeyValueStore"
	ServiceBrewFinishedHandler Service = "BrewFinishedHandler"
)

// New brew flow.
const (
	ServiceNewBrewScreen       Service = "NewBrewScreen"
	ServiceNewBrewViewModel    Service = "NewBrewViewModel"
	ServiceBrewModelController Service = "BrewModelController"

	ServiceSelectableSearchScreen                       Service = "SelectableSearchScreen"
	ServiceSelectableSearchViewModel                    Service = "SelectableSearchViewModel"
	ServiceSelectableSearchModelController              Service = "SelectableSearchModelController"
	ServiceCoffeeSelectableSearchModelController        Service = "CoffeeSelectableSearchModelController"
	ServiceCoffeeMachineSelectableSearchModelController Service = "CoffeeMachineSelectableSearchModelController"

	ServiceNumericalInputScreen          Service = "NumericalInputScreen"
	ServiceNumericalInputViewModel       Service = "NumericalInputViewModel"
	ServiceWeightInputViewModel          Service = "WeightInputViewModel"
	ServiceWaterInputViewModel           Service = "WaterInputViewModel"
	ServiceTemperatureInputViewModel     Service = "TemperatureInputViewModel"
	ServiceTimeInputViewModel            Service = "TimeInputViewModel"
	ServicePreInfusionTimeInputViewModel Service = "PreInfusionTimeInputViewModel"

	ServiceNotesScreen        Service = "NotesScreen"
	ServiceNotesViewModel     Service = "NotesViewModel"
	ServiceGrindSizeScreen    Service = "GrindSizeScreen"
	ServiceGrindSizeViewModel Service = "GrindSizeViewModel"
	ServiceTampingScreen      Service = "TampingScreen"
	ServiceTampingViewModel   Service = "TampingViewModel"
)

// Brew list, details and score.
const (
	ServiceBrewListScreen            Service = "BrewListScreen"
	ServiceBrewDetailsScreen         Service = "BrewDetailsScreen"
	ServiceBrewDetailsViewModel      Service = "BrewDetailsViewModel"
	ServiceBrewScoreDetailsScreen    Service = "BrewScoreDetailsScreen"
	ServiceBrewScoreDetailsViewModel Service = "BrewScoreDetailsViewModel"
)
