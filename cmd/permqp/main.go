// Command permqp builds quadratic binary models of TSP instances.
//
//	permqp generate --cities 5 --seed 7 -o five.yaml
//	permqp build -i five.yaml --format lp
//	permqp stats -i five.yaml
package main

func main() {
	Execute()
}
