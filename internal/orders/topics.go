package orders

const TopicOrderRelayed = "order.relayed"

// Partition key = order ref.
func PartitionKey(orderRef string) []byte { return []byte(orderRef) }
