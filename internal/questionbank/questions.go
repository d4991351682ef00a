package questionbank

// entry является одной технологией из встроенной базы вопросов.
type entry struct {
	name      string
	questions map[Tier][]string
}

// builtinEntries содержит встроенную базу технических вопросов.
// Порядок записей определяет порядок поиска по подстроке.
var builtinEntries = []entry{
	{
		name: "python",
		questions: map[Tier][]string{
			TierBasic: {
				"What are the key differences between lists and tuples in Python?",
				"Explain how Python's garbage collection works.",
				"What is the difference between '==' and 'is' operators in Python?",
			},
			TierIntermediate: {
				"How do decorators work in Python? Provide an example.",
				"Explain the concept of generators and their advantages over regular functions.",
				"What are context managers in Python and how do you implement them?",
			},
			TierAdvanced: {
				"How would you implement a metaclass in Python and when would you use it?",
				"Explain the Global Interpreter Lock (GIL) and its impact on multithreading.",
				"How would you optimize Python code for better performance?",
			},
		},
	},
	{
		name: "javascript",
		questions: map[Tier][]string{
			TierBasic: {
				"What is the difference between var, let, and const in JavaScript?",
				"Explain how hoisting works in JavaScript.",
				"What are the different data types in JavaScript?",
			},
			TierIntermediate: {
				"How do closures work in JavaScript? Provide an example.",
				"Explain event bubbling and event capturing.",
				"What is the difference between synchronous and asynchronous code?",
			},
			TierAdvanced: {
				"How does the JavaScript event loop work?",
				"Explain prototypal inheritance in JavaScript.",
				"How would you implement a Promise from scratch?",
			},
		},
	},
	{
		name: "react",
		questions: map[Tier][]string{
			TierBasic: {
				"What is the difference between state and props in React?",
				"Explain the concept of JSX.",
				"What are React components and how do you create them?",
			},
			TierIntermediate: {
				"How do React hooks work and why were they introduced?",
				"Explain the component lifecycle methods in React.",
				"What is the virtual DOM and how does it improve performance?",
			},
			TierAdvanced: {
				"How would you optimize a React application for better performance?",
				"Explain React's reconciliation algorithm.",
				"How do you implement code splitting in React?",
			},
		},
	},
	{
		name: "node.js",
		questions: map[Tier][]string{
			TierBasic: {
				"What is Node.js and how does it differ from browser JavaScript?",
				"Explain the concept of modules in Node.js.",
				"What is npm and how do you manage dependencies?",
			},
			TierIntermediate: {
				"How does the Node.js event loop work?",
				"Explain the difference between synchronous and asynchronous operations.",
				"How do you handle errors in Node.js applications?",
			},
			TierAdvanced: {
				"How would you scale a Node.js application?",
				"Explain cluster and worker threads in Node.js.",
				"How do you implement caching strategies in Node.js?",
			},
		},
	},
	{
		name: "java",
		questions: map[Tier][]string{
			TierBasic: {
				"What is the difference between abstract classes and interfaces in Java?",
				"Explain the concept of inheritance in Java.",
				"What are the different access modifiers in Java?",
			},
			TierIntermediate: {
				"How does garbage collection work in Java?",
				"Explain the concept of polymorphism with examples.",
				"What are generics in Java and why are they useful?",
			},
			TierAdvanced: {
				"How do you optimize Java applications for better performance?",
				"Explain the Java memory model and its implications.",
				"How would you implement a custom thread pool in Java?",
			},
		},
	},
	{
		name: "sql",
		questions: map[Tier][]string{
			TierBasic: {
				"What is the difference between INNER JOIN and LEFT JOIN?",
				"Explain the concept of primary keys and foreign keys.",
				"What are the different types of SQL commands?",
			},
			TierIntermediate: {
				"How do you optimize slow-running SQL queries?",
				"Explain database normalization and its benefits.",
				"What are indexes and how do they improve performance?",
			},
			TierAdvanced: {
				"How would you design a database schema for a complex application?",
				"Explain ACID properties in database transactions.",
				"How do you handle database concurrency and locking?",
			},
		},
	},
	{
		name: "mongodb",
		questions: map[Tier][]string{
			TierBasic: {
				"What is MongoDB and how does it differ from relational databases?",
				"Explain the concept of documents and collections.",
				"How do you perform basic CRUD operations in MongoDB?",
			},
			TierIntermediate: {
				"How do you design efficient MongoDB schemas?",
				"Explain indexing strategies in MongoDB.",
				"What are aggregation pipelines and how do you use them?",
			},
			TierAdvanced: {
				"How would you implement sharding in MongoDB?",
				"Explain replica sets and their role in high availability.",
				"How do you optimize MongoDB performance?",
			},
		},
	},
	{
		name: "docker",
		questions: map[Tier][]string{
			TierBasic: {
				"What is Docker and what problems does it solve?",
				"Explain the difference between Docker images and containers.",
				"How do you create a basic Dockerfile?",
			},
			TierIntermediate: {
				"How do you manage multi-container applications with Docker Compose?",
				"Explain Docker networking and volume management.",
				"What are the best practices for writing Dockerfiles?",
			},
			TierAdvanced: {
				"How would you implement a CI/CD pipeline with Docker?",
				"Explain Docker orchestration with Kubernetes.",
				"How do you optimize Docker images for production?",
			},
		},
	},
	{
		name: "kubernetes",
		questions: map[Tier][]string{
			TierBasic: {
				"What is Kubernetes and what problems does it solve?",
				"Explain the concept of pods, services, and deployments.",
				"How do you deploy an application to Kubernetes?",
			},
			TierIntermediate: {
				"How does Kubernetes handle service discovery and load balancing?",
				"Explain ConfigMaps and Secrets in Kubernetes.",
				"What are the different types of Kubernetes services?",
			},
			TierAdvanced: {
				"How would you implement auto-scaling in Kubernetes?",
				"Explain Kubernetes networking and ingress controllers.",
				"How do you monitor and troubleshoot Kubernetes clusters?",
			},
		},
	},
}

// genericTemplates используется, когда технология не найдена в базе.
// Каждый шаблон параметризуется названием технологии.
var genericTemplates = map[Tier][]string{
	TierBasic: {
		"What are the fundamental concepts you should know when working with %s?",
		"How would you explain %s to someone who's new to it?",
		"What are the main advantages of using %s in development?",
	},
	TierIntermediate: {
		"What are some best practices when developing with %s?",
		"How would you debug common issues in %s applications?",
		"What are the performance considerations when using %s?",
	},
	TierAdvanced: {
		"How would you architect a large-scale application using %s?",
		"What are the advanced features of %s that you've worked with?",
		"How would you optimize and scale applications built with %s?",
	},
}
