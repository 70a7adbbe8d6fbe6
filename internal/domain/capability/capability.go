package capability

// Entry describes one taggable feature area in the capability catalog.
type Entry struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category" yaml:"category"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	Description string   `json:"description" yaml:"description"`
}

// Catalog is an ordered set of capability entries. Entry order is
// significant: it decides tie order when match scores are equal. Core lists
// the tags appended to every match result regardless of score. Catalogs are
// treated as immutable reference data and passed explicitly to the matcher.
type Catalog struct {
	Entries []Entry  `json:"entries" yaml:"entries"`
	Core    []string `json:"core" yaml:"core"`
}

// Lookup returns the entry with the given tag name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Descriptions returns a tag -> description map for document rendering.
func (c Catalog) Descriptions() map[string]string {
	m := make(map[string]string, len(c.Entries))
	for _, e := range c.Entries {
		m[e.Name] = e.Description
	}
	return m
}

// DefaultCatalog returns the built-in catalog of Android capability tags.
func DefaultCatalog() Catalog {
	return Catalog{
		Core: []string{
			"android-clean-architecture",
			"android-mvvm-architecture",
			"android-compose-ui",
		},
		Entries: []Entry{
			{
				Name:        "android-clean-architecture",
				Category:    "Architecture",
				Keywords:    []string{"clean architecture", "layer", "separation", "domain", "presentation", "data"},
				Description: "Three-layer architecture pattern",
			},
			{
				Name:        "android-mvvm-architecture",
				Category:    "Architecture",
				Keywords:    []string{"mvvm", "viewmodel", "state", "architecture"},
				Description: "MVVM architecture with ViewModel",
			},
			{
				Name:        "android-compose-ui",
				Category:    "UI",
				Keywords:    []string{"ui", "screen", "compose", "jetpack compose", "composable", "interface"},
				Description: "Declarative UI with Jetpack Compose",
			},
			{
				Name:        "android-compose-navigation",
				Category:    "UI",
				Keywords:    []string{"navigation", "screen", "route", "navigate", "deep link"},
				Description: "Navigation between screens",
			},
			{
				Name:        "android-compose-theming",
				Category:    "UI",
				Keywords:    []string{"theme", "color", "typography", "material design", "dark mode"},
				Description: "Material 3 theming",
			},
			{
				Name:        "android-material-components",
				Category:    "UI",
				Keywords:    []string{"button", "card", "dialog", "material", "component"},
				Description: "Material Design components",
			},
			{
				Name:        "android-list-ui",
				Category:    "UI",
				Keywords:    []string{"list", "recyclerview", "lazycolumn", "scroll"},
				Description: "Scrollable lists",
			},
			{
				Name:        "android-forms-validation",
				Category:    "UI",
				Keywords:    []string{"form", "input", "validation", "field", "validate"},
				Description: "Form input and validation",
			},
			{
				Name:        "android-xml-views",
				Category:    "UI",
				Keywords:    []string{"xml", "view", "legacy", "viewbinding"},
				Description: "XML-based views",
			},
			{
				Name:        "android-hilt-di",
				Category:    "DI",
				Keywords:    []string{"dependency injection", "di", "hilt", "inject", "module"},
				Description: "Dependency injection with Hilt",
			},
			{
				Name:        "android-koin-di",
				Category:    "DI",
				Keywords:    []string{"koin", "dependency injection", "di"},
				Description: "Dependency injection with Koin",
			},
			{
				Name:        "android-repository-pattern",
				Category:    "Data",
				Keywords:    []string{"repository", "data source", "data layer"},
				Description: "Repository pattern",
			},
			{
				Name:        "android-database-room",
				Category:    "Data",
				Keywords:    []string{"database", "room", "sql", "local storage", "cache"},
				Description: "Local database with Room",
			},
			{
				Name:        "android-networking-retrofit",
				Category:    "Data",
				Keywords:    []string{"api", "network", "retrofit", "http", "rest", "endpoint"},
				Description: "REST API with Retrofit",
			},
			{
				Name:        "android-datastore",
				Category:    "Data",
				Keywords:    []string{"preferences", "datastore", "settings", "key-value"},
				Description: "DataStore for preferences",
			},
			{
				Name:        "android-stateflow",
				Category:    "State",
				Keywords:    []string{"state", "stateflow", "flow", "reactive", "observable"},
				Description: "State management with StateFlow",
			},
			{
				Name:        "android-one-time-events",
				Category:    "State",
				Keywords:    []string{"event", "navigation event", "one-time", "channel"},
				Description: "One-time UI events",
			},
			{
				Name:        "android-coroutines",
				Category:    "Async",
				Keywords:    []string{"async", "coroutine", "suspend", "background", "thread"},
				Description: "Asynchronous operations with Coroutines",
			},
			{
				Name:        "android-workmanager",
				Category:    "Background",
				Keywords:    []string{"background work", "workmanager", "periodic", "sync"},
				Description: "Background tasks with WorkManager",
			},
			{
				Name:        "android-paging3",
				Category:    "Data",
				Keywords:    []string{"pagination", "paging", "infinite scroll", "load more"},
				Description: "Pagination with Paging 3",
			},
			{
				Name:        "android-compose-testing",
				Category:    "Testing",
				Keywords:    []string{"test", "ui test", "compose test", "testing"},
				Description: "UI testing for Compose",
			},
			{
				Name:        "android-unit-testing",
				Category:    "Testing",
				Keywords:    []string{"unit test", "testing", "test", "mock"},
				Description: "Unit testing",
			},
			{
				Name:        "android-gradle-config",
				Category:    "Build",
				Keywords:    []string{"gradle", "build", "configuration", "dependency"},
				Description: "Gradle build configuration",
			},
			{
				Name:        "android-project-setup",
				Category:    "Setup",
				Keywords:    []string{"setup", "project", "initialize", "new project"},
				Description: "Project setup and structure",
			},
			{
				Name:        "android-permissions",
				Category:    "Features",
				Keywords:    []string{"permission", "runtime permission", "access"},
				Description: "Runtime permissions",
			},
			{
				Name:        "android-image-loading",
				Category:    "Features",
				Keywords:    []string{"image", "coil", "glide", "picture", "photo"},
				Description: "Image loading with Coil/Glide",
			},
			{
				Name:        "android-json-moshi",
				Category:    "JSON",
				Keywords:    []string{"json", "moshi", "parsing", "serialization", "api", "adapter"},
				Description: "JSON parsing with Moshi",
			},
			{
				Name:        "android-json-kotlinx",
				Category:    "JSON",
				Keywords:    []string{"json", "kotlin serialization", "serializable", "kotlinx", "serialization"},
				Description: "Kotlin Serialization",
			},
			{
				Name:        "android-testing-mockk",
				Category:    "Testing",
				Keywords:    []string{"mock", "test", "mockk", "testing", "verify", "stub"},
				Description: "Mocking with MockK",
			},
			{
				Name:        "android-testing-turbine",
				Category:    "Testing",
				Keywords:    []string{"flow", "test", "turbine", "stateflow", "testing", "await"},
				Description: "Flow testing with Turbine",
			},
			{
				Name:        "android-logging-timber",
				Category:    "Utilities",
				Keywords:    []string{"log", "timber", "logging", "debug", "error"},
				Description: "Logging with Timber",
			},
			{
				Name:        "android-animation-lottie",
				Category:    "Animation",
				Keywords:    []string{"animation", "lottie", "animate", "motion", "after effects"},
				Description: "Lottie animations",
			},
			{
				Name:        "android-git-atomic-commits",
				Category:    "Git",
				Keywords:    []string{"git", "commit", "atomic", "conventional", "traceability", "small commits"},
				Description: "Atomic commits with conventional format",
			},
			{
				Name:        "android-git-spec-workflow",
				Category:    "Git",
				Keywords:    []string{"git", "spec", "workflow", "branch", "feature branch", "pull request"},
				Description: "SPEC-First git workflow",
			},
			{
				Name:        "android-git-conventional-commits",
				Category:    "Git",
				Keywords:    []string{"git", "conventional", "commit message", "changelog", "semantic versioning"},
				Description: "Conventional commit format",
			},
			{
				Name:        "android-git-multi-commit-feature",
				Category:    "Git",
				Keywords:    []string{"git", "split", "multi commit", "refactor", "large feature", "code review"},
				Description: "Split features into commits",
			},
		},
	}
}
